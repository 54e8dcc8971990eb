package models

import "time"

// ProductImage is one uploaded image asset (media-store id + public URL).
type ProductImage struct {
	PublicID string `json:"public_id" bson:"publicid"`
	URL      string `json:"url" bson:"url"`
}

// Review is one user's review of a product. One review per (user, product);
// a second submission by the same user overwrites the first.
type Review struct {
	User      OrderUser `json:"user" bson:"user"`
	Rating    float64   `json:"rating" bson:"rating"`
	Comment   string    `json:"comment" bson:"comment"`
	ProductID string    `json:"productId" bson:"productid"`
	CreatedAt time.Time `json:"createdAt" bson:"createdat"`
}

// ShopSnapshot is the shop profile copied onto a product at creation time.
type ShopSnapshot struct {
	Name        string  `json:"name" bson:"name"`
	Address     string  `json:"address" bson:"address"`
	PhoneNumber string  `json:"phoneNumber" bson:"phonenumber"`
	Email       string  `json:"email" bson:"email"`
	Ratings     float64 `json:"ratings" bson:"ratings"`
}

type Product struct {
	ProductID     string         `json:"productId" bson:"productid"`
	ShopID        string         `json:"shopId" bson:"shopid"`
	Name          string         `json:"name" bson:"name"`
	Description   string         `json:"description" bson:"description"`
	Category      string         `json:"category" bson:"category"`
	OriginalPrice float64        `json:"originalPrice,omitempty" bson:"originalprice,omitempty"`
	DiscountPrice float64        `json:"discountPrice" bson:"discountprice"`
	Stock         int            `json:"stock" bson:"stock"`
	SoldOut       int            `json:"sold_out" bson:"soldout"`
	Images        []ProductImage `json:"images" bson:"images"`
	Reviews       []Review       `json:"reviews" bson:"reviews"`
	Ratings       float64        `json:"ratings" bson:"ratings"`
	Shop          ShopSnapshot   `json:"shop" bson:"shop"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdat"`
}
