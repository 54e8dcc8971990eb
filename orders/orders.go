package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"bazario/db"
	"bazario/models"
	"bazario/mq"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
)

// PricingPolicy decides what totalPrice a per-shop order gets when a cart
// spans several shops. The upstream behavior copied the full cart total onto
// every order; splitting by each order's own line items is the alternative.
type PricingPolicy string

const (
	PricingCopyTotal     PricingPolicy = "copy-total"
	PricingSplitSubtotal PricingPolicy = "split-subtotal"
)

var pricingPolicy = pricingPolicyFromEnv()

func pricingPolicyFromEnv() PricingPolicy {
	if os.Getenv("ORDER_PRICING_POLICY") == string(PricingSplitSubtotal) {
		return PricingSplitSubtotal
	}
	return PricingCopyTotal
}

type createOrderRequest struct {
	Cart            []models.OrderItem     `json:"cart"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	User            models.OrderUser       `json:"user"`
	TotalPrice      float64                `json:"totalPrice"`
	PaymentInfo     models.PaymentInfo     `json:"paymentInfo"`
}

// partitionCart groups cart line items by shop, preserving the order in
// which shops are first encountered.
func partitionCart(cart []models.OrderItem) [][]models.OrderItem {
	index := make(map[string]int)
	var groups [][]models.OrderItem

	for _, item := range cart {
		i, seen := index[item.ShopID]
		if !seen {
			i = len(groups)
			index[item.ShopID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], item)
	}
	return groups
}

func subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += float64(item.Qty) * item.Price
	}
	return sum
}

// buildOrders turns a checkout request into one order per shop in the cart.
func buildOrders(req createOrderRequest, policy PricingPolicy, now time.Time) []models.Order {
	groups := partitionCart(req.Cart)
	orders := make([]models.Order, 0, len(groups))

	for _, items := range groups {
		total := req.TotalPrice
		if policy == PricingSplitSubtotal {
			total = subtotal(items)
		}
		orders = append(orders, models.Order{
			OrderID:         "o" + utils.GenerateID(14),
			Cart:            items,
			ShippingAddress: req.ShippingAddress,
			User:            req.User,
			TotalPrice:      total,
			PaymentInfo:     req.PaymentInfo,
			Status:          StatusProcessing,
			CreatedAt:       now,
		})
	}
	return orders
}

// CreateOrder partitions the cart by shop and creates one order per shop.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order payload")
		return
	}

	if len(req.Cart) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	orders := buildOrders(req, pricingPolicy, time.Now())

	docs := make([]interface{}, len(orders))
	for i, order := range orders {
		docs[i] = order
	}
	if _, err := db.OrderCollection.InsertMany(ctx, docs); err != nil {
		log.Printf("CreateOrder insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create orders")
		return
	}

	for _, order := range orders {
		m := models.Index{EntityType: "order", EntityId: order.OrderID, Method: "POST", ItemId: order.User.UserID, ItemType: "user"}
		go mq.Emit(context.Background(), "order-created", m)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"orders":  orders,
	})
}
