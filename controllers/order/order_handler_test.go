package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	buyerID = "aaaaaaaa-1111-2222-3333-444444444444"
	otherID = "bbbbbbbb-1111-2222-3333-444444444444"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{},
	))
	return db
}

func orderRouter(db *gorm.DB, userID string, role models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("role", string(role))
	}
	r.POST("/orders", authed, CreateOrder(db))
	r.GET("/orders/:id", authed, GetOrderByID(db))
	return r
}

func postOrder(r *gin.Engine, input CreateOrderInput) *httptest.ResponseRecorder {
	body, _ := json.Marshal(input)
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRecomputesTotalServerSide(t *testing.T) {
	db := openTestDB(t)
	product := models.Product{Name: "Brown Dozen", B2CPrice: 3.99, B2BPrice: 2.49, IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	r := orderRouter(db, buyerID, models.RoleB2C)

	// the client-claimed price is ignored when absent; two cartons at
	// the retail price make 7.98 regardless of what the client computed
	w := postOrder(r, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: product.ID, Quantity: 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			OrderID     uint    `json:"orderId"`
			TotalAmount float64 `json:"totalAmount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.InDelta(t, 7.98, resp.Data.TotalAmount, 1e-9)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, resp.Data.OrderID).Error)
	assert.Equal(t, buyerID, order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 7.98, order.Subtotal, 1e-9)
	assert.InDelta(t, 7.98, order.Total, 1e-9)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Brown Dozen", order.Items[0].ProductName)
	assert.Equal(t, 3.99, order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateOrderRollsBackOnUnknownProduct(t *testing.T) {
	db := openTestDB(t)
	product := models.Product{Name: "Brown Dozen", B2CPrice: 3.99, IsActive: true}
	require.NoError(t, db.Create(&product).Error)

	r := orderRouter(db, buyerID, models.RoleB2C)

	w := postOrder(r, CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: 9999, Quantity: 1},
		},
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "product 9999 not found")

	// the valid first item must not survive the failed second one
	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestGetOrderByIDOwnership(t *testing.T) {
	db := openTestDB(t)
	order := models.Order{UserID: buyerID, OrderNumber: "20260830120000-aabbccdd"}
	require.NoError(t, db.Create(&order).Error)

	get := func(r *gin.Engine, path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	owner := orderRouter(db, buyerID, models.RoleB2C)
	assert.Equal(t, http.StatusOK, get(owner, "/orders/1").Code)

	stranger := orderRouter(db, otherID, models.RoleB2C)
	assert.Equal(t, http.StatusNotFound, get(stranger, "/orders/1").Code)

	admin := orderRouter(db, otherID, models.RoleAdmin)
	assert.Equal(t, http.StatusOK, get(admin, "/orders/1").Code)

	// a non-numeric id is not found, not a server error
	assert.Equal(t, http.StatusNotFound, get(owner, "/orders/abc").Code)
}
