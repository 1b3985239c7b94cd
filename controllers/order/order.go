package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/FreshDev-Capstone/bundle-up-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ProductID uint     `json:"productId" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,min=1"`
	Price     *float64 `json:"price"`
}

type CreateOrderInput struct {
	Items     []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	Status    string           `json:"status"`
	CartID    *uint            `json:"cartId"`
	AddressID *uint            `json:"addressId"`
}

// normalizeStatus accepts only the known statuses and falls back to
// pending for anything else.
func normalizeStatus(s string) models.OrderStatus {
	switch models.OrderStatus(s) {
	case models.OrderStatusPending, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return models.OrderStatus(s)
	default:
		return models.OrderStatusPending
	}
}

// generateOrderNumber builds the human-readable order reference:
// timestamp prefix plus a random suffix. Collisions are negligible
// and only backstopped by the unique index.
func generateOrderNumber() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// resolveUnitPrice trusts a client-supplied price only as an override.
// The fallback is always the retail price; the buyer's role is not
// re-resolved here.
func resolveUnitPrice(provided *float64, product models.Product) float64 {
	if provided != nil && *provided > 0 {
		return *provided
	}
	return product.B2CPrice
}

// POST /api/orders
//
// Creates the order and all of its items in one transaction: either
// every row commits or none do. The total is recomputed server-side
// from authoritative product rows, never taken from the client.
// Inventory counters are not decremented here; stock is managed
// out-of-band.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}

		userID := middleware.UserID(c)

		var order models.Order
		var totalAmount float64

		err := db.Transaction(func(tx *gorm.DB) error {
			order = models.Order{
				UserID:      userID,
				CartID:      input.CartID,
				AddressID:   input.AddressID,
				OrderNumber: generateOrderNumber(),
				Status:      normalizeStatus(input.Status),
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			for _, item := range input.Items {
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("product %d not found", item.ProductID)
					}
					return err
				}

				unitPrice := resolveUnitPrice(item.Price, product)
				totalAmount += unitPrice * float64(item.Quantity)

				orderItem := models.OrderItem{
					OrderID:     order.ID,
					ProductID:   product.ID,
					ProductName: product.Name,
					Price:       unitPrice,
					Quantity:    item.Quantity,
				}
				if err := tx.Create(&orderItem).Error; err != nil {
					return err
				}
			}

			return tx.Model(&order).Updates(map[string]interface{}{
				"subtotal": totalAmount,
				"total":    totalAmount,
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		order.Subtotal = totalAmount
		order.Total = totalAmount
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    gin.H{"orderId": order.ID, "totalAmount": totalAmount},
		})
	}
}

// GET /api/orders
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

// orderIDParam parses the :id path segment. A non-numeric id cannot
// match any order, so callers treat a parse failure as not found.
func orderIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := orderIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}

		query := db.Preload("Items").Where("id = ?", id)
		// non-admins can only see their own orders
		if middleware.UserRole(c) != models.RoleAdmin {
			query = query.Where("user_id = ?", middleware.UserID(c))
		}

		var order models.Order
		if err := query.First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"order": order}})
	}
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// PUT /api/admin/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid input: " + err.Error()})
			return
		}
		if normalizeStatus(input.Status) != models.OrderStatus(input.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid order status"})
			return
		}

		id, ok := orderIDParam(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}

		result := db.Model(&models.Order{}).
			Where("id = ?", id).
			Update("status", input.Status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Order status updated"}})
	}
}

// GET /api/admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}
