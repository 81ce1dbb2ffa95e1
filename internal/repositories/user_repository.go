package repositories

import "auramarket/internal/models"

// UserRepository defines the interface for user data access. The database
// and in-memory implementations are interchangeable; the composition root
// picks one, there is no separate auth path per backend.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	CountByRole(role string) (int64, error)
}
