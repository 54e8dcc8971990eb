package orders

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazario/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_HappyPath(t *testing.T) {
	assert.True(t, CanTransition(StatusProcessing, StatusTransferred))
	assert.True(t, CanTransition(StatusTransferred, StatusDelivered))
}

func TestCanTransition_RefundPath(t *testing.T) {
	assert.True(t, CanTransition(StatusProcessing, StatusRefundRequested))
	assert.True(t, CanTransition(StatusTransferred, StatusRefundRequested))
	assert.True(t, CanTransition(StatusRefundRequested, StatusRefundSuccess))
}

func TestCanTransition_RejectsIllegal(t *testing.T) {
	cases := []struct {
		from, to string
	}{
		{StatusDelivered, StatusProcessing},
		{StatusDelivered, StatusTransferred},
		{StatusRefundSuccess, StatusProcessing},
		{StatusRefundSuccess, StatusRefundRequested},
		{StatusProcessing, StatusDelivered},
		{StatusProcessing, StatusRefundSuccess},
		{StatusTransferred, StatusProcessing},
	}
	for _, tc := range cases {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s must be rejected", tc.from, tc.to)
	}
}

func newStatusRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodPut, "/order", strings.NewReader(`{"status":"`+target+`"}`))
}

func TestDecodeStatus_AcceptsOwnedTransition(t *testing.T) {
	w := httptest.NewRecorder()
	status, ok := decodeStatus(w, newStatusRequest(StatusRefundRequested),
		models.Order{Status: StatusTransferred}, StatusRefundRequested)
	assert.True(t, ok)
	assert.Equal(t, StatusRefundRequested, status)
}

func TestDecodeStatus_RefundEndpointRejectsDelivered(t *testing.T) {
	// Delivered is legal from Transferred but carries deliveredAt, payment
	// settlement and the shop credit, all owned by the seller endpoint.
	w := httptest.NewRecorder()
	_, ok := decodeStatus(w, newStatusRequest(StatusDelivered),
		models.Order{Status: StatusTransferred}, StatusRefundRequested)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be set through this endpoint")
}

func TestDecodeStatus_DeliveryEndpointRejectsRefundSuccess(t *testing.T) {
	// Refund Success must go through the endpoint that restocks.
	w := httptest.NewRecorder()
	_, ok := decodeStatus(w, newStatusRequest(StatusRefundSuccess),
		models.Order{Status: StatusRefundRequested}, StatusTransferred, StatusDelivered)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be set through this endpoint")
}

func TestDecodeStatus_RefundSuccessEndpointRejectsTransferred(t *testing.T) {
	// Transferred must go through the endpoint that commits stock.
	w := httptest.NewRecorder()
	_, ok := decodeStatus(w, newStatusRequest(StatusTransferred),
		models.Order{Status: StatusProcessing}, StatusRefundSuccess)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeStatus_StillEnforcesTransitionTable(t *testing.T) {
	w := httptest.NewRecorder()
	_, ok := decodeStatus(w, newStatusRequest(StatusDelivered),
		models.Order{Status: StatusProcessing}, StatusTransferred, StatusDelivered)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), "Illegal status transition")
}

func TestDecodeStatus_RejectsUnknownStatus(t *testing.T) {
	w := httptest.NewRecorder()
	_, ok := decodeStatus(w, newStatusRequest("Shipped"),
		models.Order{Status: StatusProcessing}, StatusTransferred, StatusDelivered)
	assert.False(t, ok)
	assert.Contains(t, w.Body.String(), "Unknown order status")
}

func TestPayout_DeductsServiceCharge(t *testing.T) {
	assert.InDelta(t, 180.0, payout(200), 1e-9)
	assert.InDelta(t, 90.0, payout(100), 1e-9)
	assert.InDelta(t, 0.0, payout(0), 1e-9)
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{StatusProcessing, StatusTransferred, StatusDelivered, StatusRefundRequested, StatusRefundSuccess} {
		assert.True(t, IsValidStatus(s))
	}
	assert.False(t, IsValidStatus("Shipped"))
	assert.False(t, IsValidStatus(""))
}
