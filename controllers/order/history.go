package orderControllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/FreshDev-Capstone/bundle-up-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// historyRow is one Orders⋈OrderItems⋈Products row for the caller.
type historyRow struct {
	ProductID   uint      `json:"productId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	EggColor    string    `json:"eggColor"`
	EggCount    int       `json:"eggCount"`
	ImageURL    string    `json:"imageUrl"`
	B2CPrice    float64   `json:"b2cPrice"`
	B2BPrice    float64   `json:"b2bPrice"`
	Quantity    int       `json:"quantity"`
	OrderedAt   time.Time `json:"orderedAt"`
}

// ProductHistory is the per-product ordering summary behind the
// reorder screen.
type ProductHistory struct {
	ProductID     uint        `json:"productId"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Category      string      `json:"category"`
	EggColor      string      `json:"eggColor"`
	EggCount      int         `json:"eggCount"`
	ImageURL      string      `json:"imageUrl"`
	B2CPrice      float64     `json:"b2cPrice"`
	B2BPrice      float64     `json:"b2bPrice"`
	LastOrdered   time.Time   `json:"lastOrdered"`
	OrderCount    int         `json:"orderCount"`
	TotalQuantity int         `json:"totalQuantity"`
	OrderDates    []time.Time `json:"orderDates"`
}

// foldHistory collapses the flat row list into one entry per product.
// lastOrdered is compared in calendar time rather than trusting the
// row order the query happened to produce.
func foldHistory(rows []historyRow) []ProductHistory {
	byProduct := make(map[uint]*ProductHistory)
	order := make([]uint, 0)

	for _, row := range rows {
		entry, ok := byProduct[row.ProductID]
		if !ok {
			entry = &ProductHistory{
				ProductID:   row.ProductID,
				Name:        row.Name,
				Description: row.Description,
				Category:    row.Category,
				EggColor:    row.EggColor,
				EggCount:    row.EggCount,
				ImageURL:    row.ImageURL,
				B2CPrice:    row.B2CPrice,
				B2BPrice:    row.B2BPrice,
				LastOrdered: row.OrderedAt,
			}
			byProduct[row.ProductID] = entry
			order = append(order, row.ProductID)
		}

		entry.OrderCount++
		entry.TotalQuantity += row.Quantity
		entry.OrderDates = append(entry.OrderDates, row.OrderedAt)
		if row.OrderedAt.After(entry.LastOrdered) {
			entry.LastOrdered = row.OrderedAt
		}
	}

	out := make([]ProductHistory, 0, len(order))
	for _, id := range order {
		out = append(out, *byProduct[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastOrdered.After(out[j].LastOrdered)
	})
	return out
}

// GET /api/orders/history
//
// An unknown user simply has no rows; that is an empty list, not an
// error.
func GetOrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []historyRow
		err := db.Table("order_items").
			Select(`order_items.product_id, order_items.quantity, orders.created_at AS ordered_at,
				products.name, products.description, products.category, products.egg_color,
				products.egg_count, products.image_url, products.b2c_price, products.b2b_price`).
			Joins("JOIN orders ON orders.id = order_items.order_id").
			Joins("JOIN products ON products.id = order_items.product_id").
			Where("orders.user_id = ?", middleware.UserID(c)).
			Order("orders.created_at DESC").
			Scan(&rows).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order history"})
			return
		}

		history := foldHistory(rows)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"orderHistory":  history,
				"totalProducts": len(history),
			},
		})
	}
}
