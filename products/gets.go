package products

import (
	"encoding/json"
	"log"
	"net/http"

	"bazario/db"
	"bazario/models"
	"bazario/rdx"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func byNewest() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
}

func findProducts(w http.ResponseWriter, r *http.Request, filter bson.M, opts *options.FindOptions) ([]models.Product, bool) {
	cursor, err := db.ProductCollection.Find(r.Context(), filter, opts)
	if err != nil {
		log.Printf("product query error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return nil, false
	}
	defer cursor.Close(r.Context())

	var products []models.Product
	if err := cursor.All(r.Context(), &products); err != nil {
		log.Printf("product decode error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return nil, false
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, true
}

// GetAllProductsShop lists a shop's products.
func GetAllProductsShop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	products, ok := findProducts(w, r, bson.M{"shopid": ps.ByName("id")}, byNewest())
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "products": products})
}

// GetProductsByName searches by case-insensitive substring match.
func GetProductsByName(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	filter := bson.M{"name": bson.M{"$regex": ps.ByName("name"), "$options": "i"}}
	products, ok := findProducts(w, r, filter, byNewest())
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "products": products})
}

// GetProductsByCategory lists products in an exact category.
func GetProductsByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	products, ok := findProducts(w, r, bson.M{"category": ps.ByName("category")}, byNewest())
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "products": products})
}

// GetAllProducts lists every product, newest first, served from the redis
// cache when warm.
func GetAllProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(productListCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(cached))
		return
	}

	products, ok := findProducts(w, r, bson.M{}, byNewest())
	if !ok {
		return
	}

	payload := utils.M{"success": true, "products": products}
	if data, err := json.Marshal(payload); err == nil {
		if err := rdx.RdxSet(productListCacheKey, string(data)); err != nil {
			log.Printf("GetAllProducts cache set error: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusCreated, payload)
}

// AdminAllProducts lists every product for the admin dashboard.
func AdminAllProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	skip, limit := utils.ParsePagination(r, 50, 500)
	products, ok := findProducts(w, r, bson.M{}, byNewest().SetSkip(skip).SetLimit(limit))
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "products": products})
}
