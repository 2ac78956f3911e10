package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		from   OrderStatus
		to     OrderStatus
		wantOK bool
	}{
		{"create to assign", OrderStatusCreated, OrderStatusAssigned, true},
		{"assign to pick", OrderStatusAssigned, OrderStatusPickedUp, true},
		{"pick to transit", OrderStatusPickedUp, OrderStatusInTransit, true},
		{"pick to delivered", OrderStatusPickedUp, OrderStatusDelivered, true},
		{"transit to delivered", OrderStatusInTransit, OrderStatusDelivered, true},
		{"delivered to return request", OrderStatusDelivered, OrderStatusReturnRequested, true},
		{"return request to resolved", OrderStatusReturnRequested, OrderStatusReturnResolved, true},
		{"created cancellable", OrderStatusCreated, OrderStatusCancelled, true},
		{"transit cancellable", OrderStatusInTransit, OrderStatusCancelled, true},

		{"skip assign", OrderStatusCreated, OrderStatusPickedUp, false},
		{"skip pick", OrderStatusAssigned, OrderStatusDelivered, false},
		{"deliver twice", OrderStatusDelivered, OrderStatusDelivered, false},
		{"return before delivery", OrderStatusInTransit, OrderStatusReturnRequested, false},
		{"cancel after delivery", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancel resolved return", OrderStatusReturnResolved, OrderStatusCancelled, false},
		{"reopen cancelled", OrderStatusCancelled, OrderStatusAssigned, false},
		{"back to created", OrderStatusAssigned, OrderStatusCreated, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOK, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestTransitionSourcesUnreachableTarget(t *testing.T) {
	assert.Empty(t, TransitionSources(OrderStatusCreated))
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, OrderStatusCancelled.Terminal())
	assert.True(t, OrderStatusReturnResolved.Terminal())
	assert.False(t, OrderStatusDelivered.Terminal())
	assert.False(t, OrderStatusCreated.Terminal())
}

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("in_transit")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusInTransit, got)

	_, err = ParseOrderStatus("On The Way")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestDeliveredStatusesCoverReturnFlow(t *testing.T) {
	assert.ElementsMatch(t,
		[]OrderStatus{OrderStatusDelivered, OrderStatusReturnRequested, OrderStatusReturnResolved},
		DeliveredStatuses())
}
