package models

import "time"

type Shop struct {
	ShopID           string    `json:"shopId" bson:"shopid"`
	Name             string    `json:"name" bson:"name"`
	Email            string    `json:"email" bson:"email"`
	Password         string    `json:"-" bson:"password"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	Address          string    `json:"address" bson:"address"`
	PhoneNumber      string    `json:"phoneNumber" bson:"phonenumber"`
	ZipCode          string    `json:"zipCode,omitempty" bson:"zipcode,omitempty"`
	Ratings          float64   `json:"ratings" bson:"ratings"`
	AvailableBalance float64   `json:"availableBalance" bson:"availablebalance"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdat"`
}
