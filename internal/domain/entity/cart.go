package entity

import (
	"errors"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("line not found in cart")
)

// CartLine snapshots the listing's title and unit price at add time.
// The price snapshot is what checkout charges, never a live re-read.
type CartLine struct {
	PhoneID  string  `json:"phone_id"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func NewCartLine(phoneID, title string, quantity int, price float64) (*CartLine, error) {
	if phoneID == "" {
		return nil, errors.New("phone ID cannot be empty for cart line")
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if price < 0 {
		return nil, errors.New("cart line price cannot be negative")
	}
	return &CartLine{PhoneID: phoneID, Title: title, Quantity: quantity, Price: price}, nil
}

type Cart struct {
	UserID    string     `json:"user_id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(userID string) *Cart {
	return &Cart{
		UserID:    userID,
		Lines:     make([]CartLine, 0),
		UpdatedAt: time.Now().UTC(),
	}
}

func (c *Cart) GetLine(phoneID string) (*CartLine, int) {
	for i, line := range c.Lines {
		if line.PhoneID == phoneID {
			return &c.Lines[i], i
		}
	}
	return nil, -1
}

// SetLine adds a line for the phone or overwrites the quantity of an
// existing one. The title and price snapshots are taken on first add and
// kept on overwrite.
func (c *Cart) SetLine(phoneID, title string, quantity int, price float64) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	line, _ := c.GetLine(phoneID)
	if line != nil {
		line.Quantity = quantity
	} else {
		newLine, err := NewCartLine(phoneID, title, quantity, price)
		if err != nil {
			return err
		}
		c.Lines = append(c.Lines, *newLine)
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Cart) UpdateLineQuantity(phoneID string, newQuantity int) error {
	if newQuantity < 1 {
		return ErrInvalidQuantity
	}
	line, _ := c.GetLine(phoneID)
	if line == nil {
		return ErrLineNotFound
	}
	line.Quantity = newQuantity
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Cart) RemoveLine(phoneID string) error {
	_, index := c.GetLine(phoneID)
	if index == -1 {
		return ErrLineNotFound
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Clear() {
	c.Lines = make([]CartLine, 0)
	c.UpdatedAt = time.Now().UTC()
}
