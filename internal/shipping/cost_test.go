package shipping_test

import (
	"testing"

	"github.com/shiplogix/shipping-service/internal/shipping"
	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	testCases := []struct {
		name   string
		weight float64
		want   float64
	}{
		{name: "one kg", weight: 1.0, want: 7.0},
		{name: "three kg", weight: 3.0, want: 11.0},
		{name: "fractional weight", weight: 0.5, want: 6.0},
		{name: "heavy consignment", weight: 100, want: 205.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, shipping.Cost(tc.weight), 1e-9)
		})
	}
}

func TestCost_Deterministic(t *testing.T) {
	first := shipping.Cost(4.2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, shipping.Cost(4.2))
	}
}

func TestCost_MonotonicInWeight(t *testing.T) {
	prev := shipping.Cost(0.1)
	for w := 0.2; w < 50; w += 0.7 {
		cur := shipping.Cost(w)
		assert.Greater(t, cur, prev, "cost must grow with weight, w=%f", w)
		prev = cur
	}
}
