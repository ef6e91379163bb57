package entity

import (
	"errors"
	"time"
)

type Brand string

const (
	BrandSamsung    Brand = "Samsung"
	BrandApple      Brand = "Apple"
	BrandHTC        Brand = "HTC"
	BrandHuawei     Brand = "Huawei"
	BrandNokia      Brand = "Nokia"
	BrandLG         Brand = "LG"
	BrandMotorola   Brand = "Motorola"
	BrandSony       Brand = "Sony"
	BrandBlackBerry Brand = "BlackBerry"
)

func (b Brand) IsValid() bool {
	switch b {
	case BrandSamsung, BrandApple, BrandHTC, BrandHuawei, BrandNokia,
		BrandLG, BrandMotorola, BrandSony, BrandBlackBerry:
		return true
	}
	return false
}

// Review is embedded in its Listing document, in insertion order.
type Review struct {
	ReviewerID string    `bson:"reviewer_id"`
	Rating     int       `bson:"rating"`
	Comment    string    `bson:"comment"`
	Hidden     bool      `bson:"hidden"`
	CreatedAt  time.Time `bson:"created_at"`
}

func NewReview(reviewerID, comment string, rating int) (*Review, error) {
	if reviewerID == "" {
		return nil, errors.New("reviewer ID cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	return &Review{
		ReviewerID: reviewerID,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

type Listing struct {
	ID         string    `bson:"_id,omitempty"`
	SellerID   string    `bson:"seller_id"`
	Title      string    `bson:"title"`
	Brand      Brand     `bson:"brand"`
	Price      float64   `bson:"price"`
	Stock      int       `bson:"stock"`
	Disabled   bool      `bson:"disabled"`
	SalesCount int       `bson:"sales_count"`
	Reviews    []Review  `bson:"reviews"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func NewListing(sellerID, title string, brand Brand, price float64, stock int) (*Listing, error) {
	if sellerID == "" {
		return nil, errors.New("seller ID cannot be empty")
	}
	if title == "" {
		return nil, errors.New("title cannot be empty")
	}
	if !brand.IsValid() {
		return nil, errors.New("unknown brand")
	}
	if price < 0 {
		return nil, errors.New("price cannot be negative")
	}
	if stock < 0 {
		return nil, errors.New("stock cannot be negative")
	}
	now := time.Now().UTC()
	return &Listing{
		SellerID:  sellerID,
		Title:     title,
		Brand:     brand,
		Price:     price,
		Stock:     stock,
		Reviews:   make([]Review, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Purchasable reports whether the listing can currently satisfy an order
// for the given quantity.
func (l *Listing) Purchasable(quantity int) bool {
	return !l.Disabled && quantity > 0 && quantity <= l.Stock
}
