package entity

import (
	"errors"
	"time"
)

var ErrInvalidAddress = errors.New("address is required")

type Address struct {
	Street  string `bson:"street"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Zip     string `bson:"zip"`
	Country string `bson:"country"`
}

// Validate enforces the backend contract: all five fields are required,
// including state.
func (a Address) Validate() error {
	if a.Street == "" || a.City == "" || a.State == "" || a.Zip == "" || a.Country == "" {
		return ErrInvalidAddress
	}
	return nil
}

type OrderItem struct {
	PhoneID  string  `bson:"phone_id"`
	Title    string  `bson:"title"`
	Quantity int     `bson:"quantity"`
	Price    float64 `bson:"price"`
}

func NewOrderItem(phoneID, title string, quantity int, price float64) (*OrderItem, error) {
	if phoneID == "" {
		return nil, errors.New("phone ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	return &OrderItem{
		PhoneID:  phoneID,
		Title:    title,
		Quantity: quantity,
		Price:    price,
	}, nil
}

// Order is immutable once created. TotalAmount always equals the sum of
// quantity times price over its items.
type Order struct {
	ID          string      `bson:"_id,omitempty"`
	UserID      string      `bson:"user_id"`
	Items       []OrderItem `bson:"items"`
	TotalAmount float64     `bson:"total_amount"`
	Address     Address     `bson:"address"`
	CreatedAt   time.Time   `bson:"created_at"`
}

func NewOrder(userID string, items []OrderItem, address Address) (*Order, error) {
	if userID == "" {
		return nil, errors.New("user ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, errors.New("order must contain at least one item")
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	order := &Order{
		UserID:    userID,
		Items:     items,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
	order.TotalAmount = order.computeTotal()
	return order, nil
}

func (o *Order) computeTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
