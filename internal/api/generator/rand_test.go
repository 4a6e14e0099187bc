package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedRandFloat64InRange(t *testing.T) {
	t.Run("Draws stay in the half-open interval", func(t *testing.T) {
		rng := NewRand(42)
		for i := 0; i < 1000; i++ {
			v := rng.Float64InRange(8.5, 9.8)
			assert.GreaterOrEqual(t, v, 8.5)
			assert.Less(t, v, 9.8)
		}
	})

	t.Run("Negative bounds work for jitter", func(t *testing.T) {
		rng := NewRand(7)
		for i := 0; i < 1000; i++ {
			v := rng.Float64InRange(-0.05, 0.05)
			assert.GreaterOrEqual(t, v, -0.05)
			assert.Less(t, v, 0.05)
		}
	})

	t.Run("Same seed yields the same sequence", func(t *testing.T) {
		a, b := NewRand(99), NewRand(99)
		for i := 0; i < 10; i++ {
			assert.Equal(t, a.Float64InRange(0, 1), b.Float64InRange(0, 1))
		}
	})
}
