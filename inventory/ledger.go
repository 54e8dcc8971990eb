package inventory

import (
	"context"
	"fmt"

	"bazario/db"
	"bazario/models"

	"go.mongodb.org/mongo-driver/bson"
)

// The ledger adjusts product stock and sold_out counters when an order ships
// or is refunded. Updates are single filtered $inc operations per product, so
// concurrent transitions on the same product cannot lose updates; the commit
// guard refuses to take stock below zero.

// deltas merges line-item quantities per product id.
func deltas(items []models.OrderItem) map[string]int {
	m := make(map[string]int, len(items))
	for _, item := range items {
		m[item.ProductID] += item.Qty
	}
	return m
}

// Commit ships an order's items: stock -= qty, sold_out += qty per product.
// A product that is missing or short on stock aborts the remaining items;
// already-applied products stay applied.
func Commit(ctx context.Context, items []models.OrderItem) error {
	for productID, qty := range deltas(items) {
		filter := bson.M{
			"productid": productID,
			"stock":     bson.M{"$gte": qty},
		}
		update := bson.M{"$inc": bson.M{"stock": -qty, "soldout": qty}}

		res, err := db.ProductCollection.UpdateOne(ctx, filter, update)
		if err != nil {
			return fmt.Errorf("commit stock for product %s: %w", productID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("product %s not found or out of stock", productID)
		}
	}
	return nil
}

// Release is the inverse of Commit, applied when a refund is approved:
// stock += qty, sold_out -= qty per product.
func Release(ctx context.Context, items []models.OrderItem) error {
	for productID, qty := range deltas(items) {
		update := bson.M{"$inc": bson.M{"stock": qty, "soldout": -qty}}

		res, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": productID}, update)
		if err != nil {
			return fmt.Errorf("release stock for product %s: %w", productID, err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("product %s not found", productID)
		}
	}
	return nil
}
