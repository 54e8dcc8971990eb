package shops

import (
	"context"
	"fmt"
	"os"

	"bazario/db"

	"go.mongodb.org/mongo-driver/bson"
)

// CreditMode controls what crediting a shop balance means. The upstream
// behavior assigned the amount outright rather than adding it; both are kept
// behind a flag until the intent is settled.
type CreditMode string

const (
	CreditAssign     CreditMode = "assign"
	CreditAccumulate CreditMode = "accumulate"
)

var creditMode = creditModeFromEnv()

func creditModeFromEnv() CreditMode {
	if os.Getenv("SHOP_CREDIT_MODE") == string(CreditAccumulate) {
		return CreditAccumulate
	}
	return CreditAssign
}

// creditUpdate builds the balance mutation for the given mode.
func creditUpdate(mode CreditMode, amount float64) bson.M {
	if mode == CreditAccumulate {
		return bson.M{"$inc": bson.M{"availablebalance": amount}}
	}
	return bson.M{"$set": bson.M{"availablebalance": amount}}
}

// Credit applies a seller earning to the shop's available balance.
func Credit(ctx context.Context, shopID string, amount float64) error {
	res, err := db.ShopCollection.UpdateOne(ctx, bson.M{"shopid": shopID}, creditUpdate(creditMode, amount))
	if err != nil {
		return fmt.Errorf("credit shop %s: %w", shopID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("credit shop %s: shop not found", shopID)
	}
	return nil
}
