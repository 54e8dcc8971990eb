package inventory

import (
	"testing"

	"bazario/models"

	"github.com/stretchr/testify/assert"
)

func TestDeltas_MergesPerProduct(t *testing.T) {
	items := []models.OrderItem{
		{ProductID: "P1", Qty: 2},
		{ProductID: "P2", Qty: 1},
		{ProductID: "P1", Qty: 3},
	}

	m := deltas(items)

	assert.Len(t, m, 2)
	assert.Equal(t, 5, m["P1"])
	assert.Equal(t, 1, m["P2"])
}

func TestDeltas_Empty(t *testing.T) {
	assert.Empty(t, deltas(nil))
}
