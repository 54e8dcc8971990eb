package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bazario/db"
	"bazario/media"
	"bazario/models"
	"bazario/mq"
	"bazario/rdx"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Media is the image store used for product assets. Tests swap in a fake.
var Media media.Store = media.NewDiskStore()

const productListCacheKey = "productlist"

type createProductRequest struct {
	ShopID        string          `json:"shopId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	OriginalPrice float64         `json:"originalPrice"`
	DiscountPrice float64         `json:"discountPrice"`
	Stock         int             `json:"stock"`
	Images        json.RawMessage `json:"images"`
}

// normalizeImages accepts either a single data-URI string or an array of
// them, the way the storefront submits the field.
func normalizeImages(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, err
	}
	return many, nil
}

// CreateProduct validates the shop, uploads the images, and persists the
// product with a denormalized shop snapshot.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product payload")
		return
	}

	var shop models.Shop
	if err := db.ShopCollection.FindOne(ctx, bson.M{"shopid": req.ShopID}).Decode(&shop); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Shop Id is invalid!")
		return
	}

	images, err := normalizeImages(req.Images)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid images field")
		return
	}

	var assets []models.ProductImage
	for _, img := range images {
		asset, err := Media.Upload(ctx, img, "products")
		if err != nil {
			log.Printf("CreateProduct upload error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upload product image")
			return
		}
		assets = append(assets, models.ProductImage{PublicID: asset.PublicID, URL: asset.URL})
	}

	product := models.Product{
		ProductID:     "p" + utils.GenerateID(14),
		ShopID:        req.ShopID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		Images:        assets,
		Reviews:       []models.Review{},
		Shop: models.ShopSnapshot{
			Name:        shop.Name,
			Address:     shop.Address,
			PhoneNumber: shop.PhoneNumber,
			Email:       shop.Email,
			Ratings:     shop.Ratings,
		},
		CreatedAt: time.Now(),
	}

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		log.Printf("CreateProduct insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	if err := rdx.RdxDel(productListCacheKey); err != nil {
		log.Printf("CreateProduct cache invalidation error: %v", err)
	}

	m := models.Index{EntityType: "product", EntityId: product.ProductID, Method: "POST", ItemId: req.ShopID, ItemType: "shop"}
	go mq.Emit(context.Background(), "product-created", m)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "product": product})
}

// DeleteShopProduct destroys the product's image assets and removes the record.
func DeleteShopProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("id")

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product is not found with this id")
		return
	}

	for _, img := range product.Images {
		if err := Media.Destroy(ctx, img.PublicID); err != nil {
			log.Printf("DeleteShopProduct destroy %s error: %v", img.PublicID, err)
		}
	}

	if _, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": productID}); err != nil {
		log.Printf("DeleteShopProduct delete error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if err := rdx.RdxDel(productListCacheKey); err != nil {
		log.Printf("DeleteShopProduct cache invalidation error: %v", err)
	}

	m := models.Index{EntityType: "product", EntityId: productID, Method: "DELETE", ItemId: product.ShopID, ItemType: "shop"}
	go mq.Emit(context.Background(), "product-deleted", m)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"message": "Product Deleted successfully!",
	})
}
