package market

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_Fetch(t *testing.T) {
	sim := NewSimulator()

	data, err := sim.Fetch(context.Background(), "Wheat", "Punjab")
	require.NoError(t, err)

	assert.Equal(t, "Wheat", data.Crop)
	assert.Equal(t, "Punjab", data.Region)
	assert.Equal(t, "Punjab APMC", data.Current.Market)

	// Wheat base is 2350 with at most +20% pair variance.
	assert.GreaterOrEqual(t, data.Current.PricePerQuintal, 2350)
	assert.LessOrEqual(t, data.Current.PricePerQuintal, 2820)

	require.Len(t, data.History, 90)
	assert.Equal(t, data.Current.PricePerQuintal, data.History[89].Price)
	for _, point := range data.History {
		assert.Positive(t, point.Price)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, point.Date)
	}
}

func TestSimulator_Deterministic(t *testing.T) {
	sim := NewSimulator()
	ctx := context.Background()

	first, err := sim.Fetch(ctx, "Cotton", "Vidarbha")
	require.NoError(t, err)
	second, err := sim.Fetch(ctx, "Cotton", "Vidarbha")
	require.NoError(t, err)

	// Same pair, same quote and same walk.
	assert.Equal(t, first.Current, second.Current)
	assert.Equal(t, first.History, second.History)

	// A different region quotes differently.
	other, err := sim.Fetch(ctx, "Cotton", "Gujarat")
	require.NoError(t, err)
	assert.NotEqual(t, first.Current.PricePerQuintal, other.Current.PricePerQuintal)
}

func TestSimulator_UnknownCropUsesFallbackBase(t *testing.T) {
	sim := NewSimulator()

	data, err := sim.Fetch(context.Background(), "Turmeric", "Erode")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, data.Current.PricePerQuintal, 3000)
	assert.LessOrEqual(t, data.Current.PricePerQuintal, 3600)
}
