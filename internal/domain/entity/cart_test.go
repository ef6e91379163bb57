package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_SetLine_AddsNewLine(t *testing.T) {
	cart := NewCart("user-1")

	err := cart.SetLine("phone-1", "iPhone 6", 2, 120.50)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "phone-1", cart.Lines[0].PhoneID)
	assert.Equal(t, "iPhone 6", cart.Lines[0].Title)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 120.50, cart.Lines[0].Price)
}

func TestCart_SetLine_OverwriteKeepsSnapshot(t *testing.T) {
	cart := NewCart("user-1")
	require.NoError(t, cart.SetLine("phone-1", "iPhone 6", 1, 120.50))

	// The second call carries a newer catalog price; the stored snapshot
	// must not change.
	err := cart.SetLine("phone-1", "iPhone 6", 5, 150.00)

	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, 120.50, cart.Lines[0].Price)
}

func TestCart_SetLine_RejectsZeroQuantity(t *testing.T) {
	cart := NewCart("user-1")

	err := cart.SetLine("phone-1", "iPhone 6", 0, 120.50)

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.True(t, cart.IsEmpty())
}

func TestCart_UpdateLineQuantity(t *testing.T) {
	cart := NewCart("user-1")
	require.NoError(t, cart.SetLine("phone-1", "iPhone 6", 1, 120.50))

	require.NoError(t, cart.UpdateLineQuantity("phone-1", 3))
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	assert.ErrorIs(t, cart.UpdateLineQuantity("phone-1", 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.UpdateLineQuantity("phone-9", 1), ErrLineNotFound)
}

func TestCart_RemoveLine(t *testing.T) {
	cart := NewCart("user-1")
	require.NoError(t, cart.SetLine("phone-1", "iPhone 6", 1, 120.50))
	require.NoError(t, cart.SetLine("phone-2", "Galaxy S5", 2, 90.00))

	require.NoError(t, cart.RemoveLine("phone-1"))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "phone-2", cart.Lines[0].PhoneID)

	assert.ErrorIs(t, cart.RemoveLine("phone-1"), ErrLineNotFound)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart("user-1")
	require.NoError(t, cart.SetLine("phone-1", "iPhone 6", 1, 120.50))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
}
