package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milk9111/jewelwood/component"
)

func TestInventoryCapsAtMaxStack(t *testing.T) {
	inv := component.NewInventory(3)
	for i := 0; i < 3; i++ {
		assert.True(t, inv.AddJewel())
	}
	assert.True(t, inv.Full())
	assert.False(t, inv.AddJewel())
	assert.Equal(t, 3, inv.Jewels)

	assert.True(t, inv.UseJewel())
	assert.False(t, inv.Full())
	assert.True(t, inv.AddJewel())
}

func TestInventoryDefaults(t *testing.T) {
	inv := component.NewInventory(0)
	assert.Equal(t, component.DefaultMaxStack, inv.MaxStack)
	assert.False(t, inv.UseJewel())

	inv.Toggle()
	assert.True(t, inv.Open)
}
