package models

import "time"

// CartItem is one cart line: a product at a specific size/color variant
// plus a quantity. CartKey is the synthetic line identity; two lines for
// the same (ProductID, SelectedSize, SelectedColor) are never kept apart,
// the cart service merges them on add.
type CartItem struct {
	CartKey       string    `json:"cart_key" gorm:"primaryKey;type:varchar(36)"`
	UserID        string    `json:"user_id" gorm:"index;type:varchar(36)"`
	ProductID     uint      `json:"product_id"`
	ProductName   string    `json:"product_name"`
	UnitPrice     float64   `json:"unit_price"` // Price at the time the line was created
	Image         string    `json:"image"`
	Quantity      int       `json:"quantity" validate:"gte=1"`
	SelectedSize  string    `json:"selected_size"`
	SelectedColor string    `json:"selected_color"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SameVariant reports whether the line refers to the same product variant
// as the given (productID, size, color) triple.
func (i CartItem) SameVariant(productID uint, size, color string) bool {
	return i.ProductID == productID &&
		i.SelectedSize == size &&
		i.SelectedColor == color
}

// Favorite is a saved product reference. Membership is by product id only,
// variant attributes are ignored.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"index:idx_fav_user_product,unique;type:varchar(36)"`
	ProductID uint      `json:"product_id" gorm:"index:idx_fav_user_product,unique"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
}
