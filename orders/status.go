package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bazario/db"
	"bazario/inventory"
	"bazario/models"
	"bazario/shops"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Order lifecycle states. Status is a closed set: a transition not listed in
// the table below is rejected.
const (
	StatusProcessing      = "Processing"
	StatusTransferred     = "Transferred to delivery partner"
	StatusDelivered       = "Delivered"
	StatusRefundRequested = "Refund Requested"
	StatusRefundSuccess   = "Refund Success"
)

// serviceChargeRate is the platform's cut of an order total on delivery.
const serviceChargeRate = 0.10

// payout is what the shop receives for a delivered order.
func payout(total float64) float64 {
	return total - total*serviceChargeRate
}

var transitions = map[string][]string{
	StatusProcessing:      {StatusTransferred, StatusRefundRequested},
	StatusTransferred:     {StatusDelivered, StatusRefundRequested},
	StatusRefundRequested: {StatusRefundSuccess},
	// Delivered and Refund Success are terminal.
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusProcessing, StatusTransferred, StatusDelivered, StatusRefundRequested, StatusRefundSuccess:
		return true
	}
	return false
}

func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type statusRequest struct {
	Status string `json:"status"`
}

// decodeStatus reads the requested status and checks it against both the
// transition table and the statuses this endpoint is allowed to set. Each
// status carries side effects owned by one handler, so a table-legal target
// is still rejected when a different endpoint asks for it.
func decodeStatus(w http.ResponseWriter, r *http.Request, order models.Order, allowed ...string) (string, bool) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status payload")
		return "", false
	}
	if !IsValidStatus(req.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown order status: "+req.Status)
		return "", false
	}
	ok := false
	for _, s := range allowed {
		if s == req.Status {
			ok = true
			break
		}
	}
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest,
			"Status "+req.Status+" cannot be set through this endpoint")
		return "", false
	}
	if !CanTransition(order.Status, req.Status) {
		utils.RespondWithError(w, http.StatusBadRequest,
			"Illegal status transition from "+order.Status+" to "+req.Status)
		return "", false
	}
	return req.Status, true
}

func findOrder(ctx context.Context, w http.ResponseWriter, orderID string) (models.Order, bool) {
	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found with this id")
		return order, false
	}
	return order, true
}

// UpdateOrderStatus moves an order along the delivery path. Shipping commits
// stock, delivery settles payment and credits the seller.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	order, ok := findOrder(ctx, w, ps.ByName("id"))
	if !ok {
		return
	}
	newStatus, ok := decodeStatus(w, r, order, StatusTransferred, StatusDelivered)
	if !ok {
		return
	}

	if newStatus == StatusTransferred {
		if err := inventory.Commit(ctx, order.Cart); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	order.Status = newStatus
	update := bson.M{"status": newStatus}

	if newStatus == StatusDelivered {
		now := time.Now()
		order.DeliveredAt = &now
		order.PaymentInfo.Status = "Succeeded"
		update["deliveredat"] = now
		update["paymentinfo"] = order.PaymentInfo

		if err := shops.Credit(ctx, order.Cart[0].ShopID, payout(order.TotalPrice)); err != nil {
			log.Printf("UpdateOrderStatus credit error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to credit shop balance")
			return
		}
	}

	if _, err := db.OrderCollection.UpdateOne(ctx, bson.M{"orderid": order.OrderID}, bson.M{"$set": update}); err != nil {
		log.Printf("UpdateOrderStatus update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

// OrderRefund lets a buyer ask for a refund.
func OrderRefund(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	order, ok := findOrder(ctx, w, ps.ByName("id"))
	if !ok {
		return
	}
	newStatus, ok := decodeStatus(w, r, order, StatusRefundRequested)
	if !ok {
		return
	}

	order.Status = newStatus
	if _, err := db.OrderCollection.UpdateOne(ctx, bson.M{"orderid": order.OrderID},
		bson.M{"$set": bson.M{"status": newStatus}}); err != nil {
		log.Printf("OrderRefund update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"order":   order,
		"message": "Order Refund Request successfully!",
	})
}

// OrderRefundSuccess lets a seller approve a refund. The response goes out
// first; restocking runs after it, detached from the request context.
func OrderRefundSuccess(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	order, ok := findOrder(ctx, w, ps.ByName("id"))
	if !ok {
		return
	}
	newStatus, ok := decodeStatus(w, r, order, StatusRefundSuccess)
	if !ok {
		return
	}

	if _, err := db.OrderCollection.UpdateOne(ctx, bson.M{"orderid": order.OrderID},
		bson.M{"$set": bson.M{"status": newStatus}}); err != nil {
		log.Printf("OrderRefundSuccess update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Order Refund successfull!",
	})

	if err := inventory.Release(context.Background(), order.Cart); err != nil {
		log.Printf("OrderRefundSuccess restock error: %v", err)
	}
}
