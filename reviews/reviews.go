package reviews

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bazario/db"
	"bazario/globals"
	"bazario/models"
	"bazario/rdx"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// upsertReview replaces the author's existing review in place or appends a
// new one. One review per (user, product).
func upsertReview(reviews []models.Review, review models.Review) []models.Review {
	for i := range reviews {
		if reviews[i].User.UserID == review.User.UserID {
			reviews[i] = review
			return reviews
		}
	}
	return append(reviews, review)
}

// averageRating is the arithmetic mean over all reviews, 0 when empty.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, rev := range reviews {
		sum += rev.Rating
	}
	return sum / float64(len(reviews))
}

type createReviewRequest struct {
	User      models.OrderUser `json:"user"`
	Rating    float64          `json:"rating"`
	Comment   string           `json:"comment"`
	ProductID string           `json:"productId"`
	OrderID   string           `json:"orderId"`
}

// CreateNewReview upserts the caller's review on a product, recomputes the
// mean rating, and marks the order's cart line as reviewed.
func CreateNewReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	userID, okUser := ctx.Value(globals.UserIDKey).(string)
	if !okUser || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": req.ProductID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found with this id")
		return
	}

	review := models.Review{
		User:      req.User,
		Rating:    req.Rating,
		Comment:   req.Comment,
		ProductID: req.ProductID,
		CreatedAt: time.Now(),
	}
	review.User.UserID = userID

	product.Reviews = upsertReview(product.Reviews, review)
	product.Ratings = averageRating(product.Reviews)

	_, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": req.ProductID},
		bson.M{"$set": bson.M{"reviews": product.Reviews, "ratings": product.Ratings}})
	if err != nil {
		log.Printf("CreateNewReview update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	// Flag the reviewed line item on the originating order.
	arrayFilters := options.ArrayFilters{Filters: []interface{}{bson.M{"elem.productid": req.ProductID}}}
	_, err = db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderid": req.OrderID},
		bson.M{"$set": bson.M{"cart.$[elem].isreviewed": true}},
		options.Update().SetArrayFilters(arrayFilters))
	if err != nil {
		log.Printf("CreateNewReview order flag error: %v", err)
	}

	if err := rdx.RdxDel("productlist"); err != nil {
		log.Printf("CreateNewReview cache invalidation error: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Reviewed successfully!",
	})
}
