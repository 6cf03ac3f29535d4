package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasRTL(t *testing.T) {
	assert.True(t, HasRTL("דיווח"))
	assert.True(t, HasRTL("plate דנה 123"))
	assert.False(t, HasRTL("red sedan plate 123"))
	assert.False(t, HasRTL(""))
}

func TestVisual(t *testing.T) {
	t.Run("reverses hebrew", func(t *testing.T) {
		assert.Equal(t, "ןופצ", Visual("צפון"))
	})

	t.Run("latin untouched", func(t *testing.T) {
		assert.Equal(t, "red sedan plate 123", Visual("red sedan plate 123"))
	})

	t.Run("round trips", func(t *testing.T) {
		s := "מאזדה אדומה"
		assert.Equal(t, s, Visual(Visual(s)))
	})
}
