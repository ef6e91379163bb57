package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() Address {
	return Address{
		Street:  "1 Example St",
		City:    "Sydney",
		State:   "NSW",
		Zip:     "2000",
		Country: "Australia",
	}
}

func TestAddress_Validate(t *testing.T) {
	require.NoError(t, testAddress().Validate())

	cases := []struct {
		name    string
		mutate  func(*Address)
	}{
		{"missing street", func(a *Address) { a.Street = "" }},
		{"missing city", func(a *Address) { a.City = "" }},
		{"missing state", func(a *Address) { a.State = "" }},
		{"missing zip", func(a *Address) { a.Zip = "" }},
		{"missing country", func(a *Address) { a.Country = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addr := testAddress()
			tc.mutate(&addr)
			assert.ErrorIs(t, addr.Validate(), ErrInvalidAddress)
		})
	}
}

func TestNewOrder_ComputesTotal(t *testing.T) {
	items := []OrderItem{
		{PhoneID: "phone-1", Title: "iPhone 6", Quantity: 2, Price: 120.50},
		{PhoneID: "phone-2", Title: "Galaxy S5", Quantity: 1, Price: 90.00},
	}

	order, err := NewOrder("user-1", items, testAddress())

	require.NoError(t, err)
	assert.Equal(t, 331.00, order.TotalAmount)
	assert.Equal(t, "user-1", order.UserID)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestNewOrder_RejectsEmptyItems(t *testing.T) {
	_, err := NewOrder("user-1", nil, testAddress())
	assert.Error(t, err)
}

func TestNewOrder_RejectsInvalidAddress(t *testing.T) {
	items := []OrderItem{{PhoneID: "phone-1", Quantity: 1, Price: 10}}
	_, err := NewOrder("user-1", items, Address{City: "Sydney"})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestNewOrderItem_Validation(t *testing.T) {
	_, err := NewOrderItem("", "iPhone 6", 1, 10)
	assert.Error(t, err)

	_, err = NewOrderItem("phone-1", "iPhone 6", 0, 10)
	assert.Error(t, err)

	_, err = NewOrderItem("phone-1", "iPhone 6", 1, -1)
	assert.Error(t, err)

	item, err := NewOrderItem("phone-1", "iPhone 6", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}
