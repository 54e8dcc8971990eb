package shops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestCreditUpdate_AssignOverwrites(t *testing.T) {
	update := creditUpdate(CreditAssign, 180)
	assert.Equal(t, bson.M{"$set": bson.M{"availablebalance": 180.0}}, update)
}

func TestCreditUpdate_AccumulateIncrements(t *testing.T) {
	update := creditUpdate(CreditAccumulate, 180)
	assert.Equal(t, bson.M{"$inc": bson.M{"availablebalance": 180.0}}, update)
}

func TestCreditModeDefaultsToAssign(t *testing.T) {
	assert.Equal(t, CreditAssign, creditModeFromEnv())
}
