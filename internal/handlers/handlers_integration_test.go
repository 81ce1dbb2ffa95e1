package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"auramarket/internal/handlers"
	"auramarket/internal/middleware"
	"auramarket/internal/models"
	"auramarket/internal/repositories"
	"auramarket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupApp builds a Fiber app over a fresh in-memory SQLite database with
// the same route layout as the real server. The database is named after
// the test so runs never share state.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	viper.SetDefault("JWT_SECRET", "test_jwt_secret")
	viper.AutomaticEnv()
	jwtSecret := viper.GetString("JWT_SECRET")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to connect to in-memory database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Order{},
		&models.OrderItem{},
		&models.Conversation{},
		&models.Message{},
	)
	require.NoError(t, err, "failed to auto-migrate database")

	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	messageRepo := repositories.NewGORMMessageRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	productService := services.NewProductService(productRepo)
	cartService := services.NewCartService(cartRepo, favoriteRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, nil) // no broker in tests
	chatService := services.NewChatService(messageRepo)
	adminService := services.NewAdminService(userRepo, productRepo, orderRepo)

	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, authService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(adminService)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	authHandler.RegisterMeRoute(protected)
	cartHandler.RegisterRoutes(protected)
	orderHandler.RegisterRoutes(protected)
	chatHandler.RegisterRoutes(protected)

	sellerArea := protected.Group("", middleware.RoleRequired(models.RoleSeller))
	productHandler.RegisterSellerRoutes(sellerArea)

	fulfilment := protected.Group("", middleware.RoleRequired(models.RoleSeller, models.RoleAdmin))
	orderHandler.RegisterStatusRoute(fulfilment)

	adminArea := protected.Group("", middleware.RoleRequired(models.RoleAdmin))
	adminHandler.RegisterRoutes(adminArea)

	return app
}

// doJSON sends a JSON request to the test app, with a bearer token when
// given, and decodes the JSON response into out (when non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	resp.Body.Close()
	return resp
}

// registerAndLogin creates an account and returns its bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, user map[string]string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", user, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var loginResp map[string]string
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": user["username"],
		"password": user["password"],
	}, &loginResp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, loginResp["token"])
	return loginResp["token"]
}

// createListing creates a product through the seller API and returns it.
func createListing(t *testing.T, app *fiber.App, sellerToken string, product map[string]interface{}) models.Product {
	t.Helper()

	var created models.Product
	resp := doJSON(t, app, http.MethodPost, "/api/v1/seller/products", sellerToken, product, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotZero(t, created.ID)
	return created
}

// TestMain suppresses logging during tests for cleaner output.
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	userToRegister := map[string]string{
		"username": "testuser",
		"email":    "test@example.com",
		"password": "password123",
	}
	var registerResp map[string]interface{}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", userToRegister, &registerResp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "User registered successfully", registerResp["message"])

	// Duplicate registration conflicts.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", userToRegister, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var loginResp map[string]string
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "password123",
	}, &loginResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, loginResp["token"])

	// Wrong password is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "testuser",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The issued token works on /auth/me.
	var me models.User
	resp = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", loginResp["token"], nil, &me)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "testuser", me.Username)
	assert.Equal(t, models.RoleCustomer, me.Role)
	assert.Empty(t, me.Password)
}

func TestCatalogIsPublic(t *testing.T) {
	app := setupApp(t)

	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller", "store_name": "Aura Boutique",
	})
	createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Silk Slip Dress", "category": "Dresses", "price": 120.0, "stock": 8,
	})
	createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Leather Tote", "category": "Bags", "price": 95.0, "stock": 3,
	})

	// No token needed for browsing.
	var listResp struct {
		Products []models.Product `json:"products"`
		Count    int              `json:"count"`
	}
	resp := doJSON(t, app, http.MethodGet, "/api/v1/products", "", nil, &listResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, listResp.Count)
	assert.Equal(t, "Aura Boutique", listResp.Products[0].Seller)

	// Category filter narrows the catalog.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?category=Bags", "", nil, &listResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, listResp.Count)
	assert.Equal(t, "Leather Tote", listResp.Products[0].Name)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products?sort=price-high", "", nil, &listResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Silk Slip Dress", listResp.Products[0].Name)

	var catResp struct {
		Categories []string `json:"categories"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/categories", "", nil, &catResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, catResp.Categories, "Dresses")

	resp = doJSON(t, app, http.MethodGet, "/api/v1/products/9999", "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSellerProductLifecycle(t *testing.T) {
	app := setupApp(t)

	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller", "store_name": "Aura Boutique",
	})
	customerToken := registerAndLogin(t, app, map[string]string{
		"username": "amelia", "email": "amelia@example.com", "password": "password123",
	})

	// Customers cannot reach the seller area.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/seller/products", customerToken, map[string]interface{}{
		"name": "Sneaky Listing", "category": "Shoes", "price": 10.0,
	}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	created := createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Canvas Sneakers", "category": "Shoes", "price": 60.0, "stock": 20,
	})
	assert.Equal(t, "Aura Boutique", created.Seller)

	// Unknown categories are rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/seller/products", sellerToken, map[string]interface{}{
		"name": "Gaming Mouse", "category": "Electronics", "price": 40.0,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var updated models.Product
	resp = doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/v1/seller/products/%d", created.ID), sellerToken, map[string]interface{}{
		"name": "Canvas Sneakers v2", "category": "Shoes", "price": 55.0, "stock": 18,
	}, &updated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Canvas Sneakers v2", updated.Name)

	var stats services.SellerStats
	resp = doJSON(t, app, http.MethodGet, "/api/v1/seller/stats", sellerToken, nil, &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, stats.ProductCount)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/seller/products/%d", created.ID), sellerToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/products/%d", created.ID), "", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartMergeAndCheckoutFlow(t *testing.T) {
	app := setupApp(t)

	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller",
	})
	customerToken := registerAndLogin(t, app, map[string]string{
		"username": "amelia", "email": "amelia@example.com", "password": "password123",
	})

	dress := createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Silk Slip Dress", "category": "Dresses", "price": 120.0, "stock": 8,
	})

	addReq := map[string]interface{}{
		"product_id": dress.ID, "quantity": 2, "selected_size": "M", "selected_color": "Black",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/cart/items", customerToken, addReq, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Adding the same variant again merges into the existing line.
	addReq["quantity"] = 1
	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", customerToken, addReq, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// A different size is its own line.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/cart/items", customerToken, map[string]interface{}{
		"product_id": dress.ID, "quantity": 1, "selected_size": "L", "selected_color": "Black",
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var cartResp struct {
		Items      []models.CartItem `json:"items"`
		Total      float64           `json:"total"`
		ItemsCount int               `json:"items_count"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/cart", customerToken, nil, &cartResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cartResp.Items, 2)
	assert.Equal(t, 3, cartResp.Items[0].Quantity, "same-variant adds merged")
	assert.Equal(t, 4, cartResp.ItemsCount)
	assert.InDelta(t, 4*120.0, cartResp.Total, 1e-9)

	// Dropping a line's quantity to zero removes it.
	resp = doJSON(t, app, http.MethodPatch, "/api/v1/cart/items/"+cartResp.Items[1].CartKey, customerToken,
		map[string]interface{}{"quantity": 0}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/api/v1/cart", customerToken, nil, &cartResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, cartResp.Items, 1)

	var order models.Order
	resp = doJSON(t, app, http.MethodPost, "/api/v1/checkout", customerToken, map[string]string{
		"shipping_address": "123 Main St, New York, NY 10001",
	}, &order)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.InDelta(t, 3*120.0, order.Total, 1e-9)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 120.0, order.Items[0].Price)

	// The cart is empty after checkout, so a second checkout fails.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/cart", customerToken, nil, &cartResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cartResp.Items)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/checkout", customerToken, map[string]string{
		"shipping_address": "123 Main St",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var ordersResp struct {
		Orders []models.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders", customerToken, nil, &ordersResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, ordersResp.Count)
	assert.Equal(t, order.ID, ordersResp.Orders[0].ID)

	// Another customer cannot read the order.
	otherToken := registerAndLogin(t, app, map[string]string{
		"username": "intruder", "email": "intruder@example.com", "password": "password123",
	})
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID, otherToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOrderStatusLifecycle(t *testing.T) {
	app := setupApp(t)

	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller",
	})
	customerToken := registerAndLogin(t, app, map[string]string{
		"username": "amelia", "email": "amelia@example.com", "password": "password123",
	})

	dress := createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Silk Slip Dress", "category": "Dresses", "price": 120.0, "stock": 8,
	})
	resp := doJSON(t, app, http.MethodPost, "/api/v1/cart/items", customerToken, map[string]interface{}{
		"product_id": dress.ID, "quantity": 1,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	resp = doJSON(t, app, http.MethodPost, "/api/v1/checkout", customerToken, map[string]string{
		"shipping_address": "somewhere",
	}, &order)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	statusPath := "/api/v1/orders/" + order.ID + "/status"

	// Customers cannot move orders through fulfilment.
	resp = doJSON(t, app, http.MethodPatch, statusPath, customerToken, map[string]string{"status": "shipped"}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Skipping a step conflicts.
	resp = doJSON(t, app, http.MethodPatch, statusPath, sellerToken, map[string]string{"status": "delivered"}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, statusPath, sellerToken, map[string]string{"status": "shipped"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPatch, statusPath, sellerToken, map[string]string{"status": "delivered"}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var reloaded models.Order
	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/"+order.ID, customerToken, nil, &reloaded)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.OrderStatusDelivered, reloaded.Status)
}

func TestFavorites(t *testing.T) {
	app := setupApp(t)

	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller",
	})
	customerToken := registerAndLogin(t, app, map[string]string{
		"username": "amelia", "email": "amelia@example.com", "password": "password123",
	})
	tote := createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Leather Tote", "category": "Bags", "price": 95.0, "stock": 3,
	})

	favReq := map[string]interface{}{"product_id": tote.ID}
	resp := doJSON(t, app, http.MethodPost, "/api/v1/favorites", customerToken, favReq, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	// Favoriting twice keeps a single entry.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/favorites", customerToken, favReq, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var favResp struct {
		Favorites []models.Favorite `json:"favorites"`
		Count     int               `json:"count"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/favorites", customerToken, nil, &favResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, favResp.Count)
	assert.Equal(t, "Leather Tote", favResp.Favorites[0].Product.Name)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", tote.ID), customerToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/api/v1/favorites", customerToken, nil, &favResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, favResp.Count)

	// Unknown products cannot be favorited.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/favorites", customerToken, map[string]interface{}{"product_id": 9999}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMessagingFlow(t *testing.T) {
	app := setupApp(t)

	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller",
	})
	customerToken := registerAndLogin(t, app, map[string]string{
		"username": "amelia", "email": "amelia@example.com", "password": "password123",
	})

	convPath := "/api/v1/conversations/order-questions"
	var sent models.Message
	resp := doJSON(t, app, http.MethodPost, convPath+"/messages", customerToken,
		map[string]string{"text": "Is the tote still in stock?"}, &sent)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, models.RoleCustomer, sent.SenderRole)

	resp = doJSON(t, app, http.MethodPost, convPath+"/messages", sellerToken,
		map[string]string{"text": "Yes, two left."}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Replying joined the seller: the conversation shows up in their list
	// and the customer's opener counts as unread for them.
	var sellerConvs struct {
		Conversations []models.Conversation `json:"conversations"`
		Count         int                   `json:"count"`
	}
	resp = doJSON(t, app, http.MethodGet, "/api/v1/conversations", sellerToken, nil, &sellerConvs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, sellerConvs.Count)
	var sellerUnread map[string]int
	resp = doJSON(t, app, http.MethodGet, "/api/v1/conversations/unread", sellerToken, nil, &sellerUnread)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, sellerUnread["unread"])

	// Blank messages are rejected.
	resp = doJSON(t, app, http.MethodPost, convPath+"/messages", customerToken, map[string]string{"text": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var conv models.Conversation
	resp = doJSON(t, app, http.MethodGet, convPath, customerToken, nil, &conv)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, conv.Messages, 2)

	// The seller's reply is unread until the customer opens it.
	var unreadResp map[string]int
	resp = doJSON(t, app, http.MethodGet, "/api/v1/conversations/unread", customerToken, nil, &unreadResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, unreadResp["unread"])

	resp = doJSON(t, app, http.MethodPost, convPath+"/read", customerToken, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, http.MethodGet, "/api/v1/conversations/unread", customerToken, nil, &unreadResp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, unreadResp["unread"])

	// An outsider sees nothing.
	strangerToken := registerAndLogin(t, app, map[string]string{
		"username": "stranger", "email": "stranger@example.com", "password": "password123",
	})
	resp = doJSON(t, app, http.MethodGet, convPath, strangerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminOverview(t *testing.T) {
	app := setupApp(t)

	adminToken := registerAndLogin(t, app, map[string]string{
		"username": "root", "email": "root@example.com", "password": "password123",
		"role": "admin",
	})
	customerToken := registerAndLogin(t, app, map[string]string{
		"username": "amelia", "email": "amelia@example.com", "password": "password123",
	})
	sellerToken := registerAndLogin(t, app, map[string]string{
		"username": "boutique", "email": "shop@example.com", "password": "password123",
		"role": "seller",
	})
	createListing(t, app, sellerToken, map[string]interface{}{
		"name": "Leather Tote", "category": "Bags", "price": 95.0, "stock": 3,
	})

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/overview", customerToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var stats services.PlatformStats
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/overview", adminToken, nil, &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), stats.Customers)
	assert.Equal(t, int64(1), stats.Sellers)
	assert.Equal(t, 1, stats.Products)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/api/v1/cart", "/api/v1/orders", "/api/v1/conversations", "/api/v1/auth/me"} {
		resp := doJSON(t, app, http.MethodGet, path, "", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/cart", "not-a-valid-token", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
