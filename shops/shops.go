package shops

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bazario/auth"
	"bazario/db"
	"bazario/middleware"
	"bazario/models"
	"bazario/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// CreateShop registers a seller account.
func CreateShop(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var shop models.Shop
	if err := json.NewDecoder(r.Body).Decode(&shop); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if shop.Name == "" || shop.Email == "" || shop.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	var existing models.Shop
	err := db.ShopCollection.FindOne(context.TODO(), bson.M{"email": shop.Email}).Decode(&existing)
	if err == nil {
		http.Error(w, "Shop already exists", http.StatusConflict)
		return
	} else if err != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(shop.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for shop %s: %v", shop.Email, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}
	shop.Password = string(hashed)
	shop.ShopID = "s" + utils.GenerateID(10)
	shop.CreatedAt = time.Now()

	if _, err := db.ShopCollection.InsertOne(context.TODO(), shop); err != nil {
		http.Error(w, "Failed to register shop", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"shopId":  shop.ShopID,
		"message": "Shop registered successfully",
	})
}

// LoginShop authenticates a seller and issues a token carrying the seller role.
func LoginShop(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	var shop models.Shop
	err := db.ShopCollection.FindOne(context.TODO(), bson.M{"email": creds.Email}).Decode(&shop)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(shop.Password), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	tokenString, err := auth.IssueToken(middleware.Claims{
		Username: shop.Name,
		UserID:   shop.ShopID,
		Role:     []string{"seller"},
		ShopID:   shop.ShopID,
	})
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"token":   tokenString,
		"shopId":  shop.ShopID,
	})
}

// GetShopInfo returns a shop's public profile.
func GetShopInfo(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	shopID := ps.ByName("id")

	var shop models.Shop
	err := db.ShopCollection.FindOne(r.Context(), bson.M{"shopid": shopID}).Decode(&shop)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Shop not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "shop": shop})
}
