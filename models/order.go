package models

import "time"

// OrderItem is a single cart line inside an order: one product from one shop.
type OrderItem struct {
	ProductID  string  `json:"productId" bson:"productid"`
	ShopID     string  `json:"shopId" bson:"shopid"`
	Name       string  `json:"name" bson:"name"`
	Qty        int     `json:"qty" bson:"qty"`
	Price      float64 `json:"price" bson:"price"` // unit price
	IsReviewed bool    `json:"isReviewed" bson:"isreviewed"`
}

type ShippingAddress struct {
	Country  string `json:"country" bson:"country"`
	City     string `json:"city" bson:"city"`
	Address1 string `json:"address1" bson:"address1"`
	Address2 string `json:"address2,omitempty" bson:"address2,omitempty"`
	ZipCode  string `json:"zipCode" bson:"zipcode"`
}

type PaymentInfo struct {
	ID     string  `json:"id,omitempty" bson:"id,omitempty"`
	Type   string  `json:"type" bson:"type"` // e.g. "Cash On Delivery", "Card"
	Status string  `json:"status" bson:"status"`
	Amount float64 `json:"amount" bson:"amount"`
}

// OrderUser is the buyer snapshot embedded in an order.
type OrderUser struct {
	UserID   string `json:"userId" bson:"userid"`
	Username string `json:"username" bson:"username"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
}

type Order struct {
	OrderID         string          `json:"orderId" bson:"orderid"`
	Cart            []OrderItem     `json:"cart" bson:"cart"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingaddress"`
	User            OrderUser       `json:"user" bson:"user"`
	TotalPrice      float64         `json:"totalPrice" bson:"totalprice"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo" bson:"paymentinfo"`
	Status          string          `json:"status" bson:"status"`
	DeliveredAt     *time.Time      `json:"deliveredAt,omitempty" bson:"deliveredat,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdat"`
}
