package orders

import (
	"log"
	"net/http"

	"bazario/db"
	"bazario/models"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func findOrders(w http.ResponseWriter, r *http.Request, filter bson.M, opts *options.FindOptions) ([]models.Order, bool) {
	cursor, err := db.OrderCollection.Find(r.Context(), filter, opts)
	if err != nil {
		log.Printf("order query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return nil, false
	}
	defer cursor.Close(r.Context())

	var orders []models.Order
	if err := cursor.All(r.Context(), &orders); err != nil {
		log.Printf("order decode error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve orders")
		return nil, false
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, true
}

// GetAllOrders lists a buyer's orders, newest first.
func GetAllOrders(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orders, ok := findOrders(w, r,
		bson.M{"user.userid": ps.ByName("userId")},
		options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}}))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": orders})
}

// GetSellerAllOrders lists every order containing a shop's items, newest first.
func GetSellerAllOrders(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	orders, ok := findOrders(w, r,
		bson.M{"cart.shopid": ps.ByName("shopId")},
		options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}}))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": orders})
}

// AdminAllOrders lists every order, most recently delivered first.
func AdminAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	skip, limit := utils.ParsePagination(r, 50, 500)
	orders, ok := findOrders(w, r, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "deliveredat", Value: -1}, {Key: "createdat", Value: -1}}).
			SetSkip(skip).SetLimit(limit))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": orders})
}

// CalculateShopSales sums paymentInfo.amount over a shop's delivered orders.
func CalculateShopSales(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shopID := ps.ByName("shopId")

	var shop models.Shop
	if err := db.ShopCollection.FindOne(r.Context(), bson.M{"shopid": shopID}).Decode(&shop); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
		return
	}

	orders, ok := findOrders(w, r,
		bson.M{"cart.shopid": shopID, "status": StatusDelivered},
		options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}}))
	if !ok {
		return
	}

	var totalSales float64
	for _, order := range orders {
		totalSales += order.PaymentInfo.Amount
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":    true,
		"shopName":   shop.Name,
		"totalSales": totalSales,
	})
}
