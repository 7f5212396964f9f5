package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lavash/internal/models"
)

func TestParseStatus(t *testing.T) {
	t.Run("should accept every label in the vocabulary", func(t *testing.T) {
		for _, raw := range []string{
			"pending", "assigned", "preparing", "cooking",
			"out_for_delivery", "delivered", "cancelled",
		} {
			status, err := models.ParseStatus(raw)
			require.NoError(t, err, "label %q", raw)
			assert.Equal(t, raw, status.String())
		}
	})

	t.Run("should reject labels outside the vocabulary", func(t *testing.T) {
		for _, raw := range []string{"", "PENDING", "done", "cooking "} {
			_, err := models.ParseStatus(raw)
			assert.Error(t, err, "label %q", raw)
		}
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("should allow forward moves including skips", func(t *testing.T) {
		cases := []struct{ from, to models.Status }{
			{models.StatusPending, models.StatusAssigned},
			{models.StatusAssigned, models.StatusPreparing},
			{models.StatusPreparing, models.StatusCooking},
			{models.StatusCooking, models.StatusOutForDelivery},
			{models.StatusOutForDelivery, models.StatusDelivered},
			{models.StatusPending, models.StatusOutForDelivery},
			{models.StatusAssigned, models.StatusDelivered},
		}
		for _, tc := range cases {
			assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("should allow cancellation from any non-terminal state", func(t *testing.T) {
		for _, from := range []models.Status{
			models.StatusPending, models.StatusAssigned, models.StatusPreparing,
			models.StatusCooking, models.StatusOutForDelivery,
		} {
			assert.True(t, from.CanTransitionTo(models.StatusCancelled), "from %s", from)
		}
	})

	t.Run("should reject backward moves", func(t *testing.T) {
		cases := []struct{ from, to models.Status }{
			{models.StatusAssigned, models.StatusPending},
			{models.StatusDelivered, models.StatusPending},
			{models.StatusOutForDelivery, models.StatusCooking},
			{models.StatusPreparing, models.StatusPreparing},
		}
		for _, tc := range cases {
			assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("should reject any move out of a terminal state", func(t *testing.T) {
		for _, from := range []models.Status{models.StatusDelivered, models.StatusCancelled} {
			for _, to := range []models.Status{
				models.StatusPending, models.StatusAssigned, models.StatusCancelled,
			} {
				assert.False(t, from.CanTransitionTo(to), "%s -> %s", from, to)
			}
			assert.True(t, from.IsTerminal())
		}
	})

	t.Run("should let legacy labels re-enter the pipeline", func(t *testing.T) {
		legacy := models.Status("cooking soon")
		assert.True(t, legacy.CanTransitionTo(models.StatusPreparing))
		assert.True(t, legacy.CanTransitionTo(models.StatusCancelled))
	})
}
