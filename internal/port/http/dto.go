package http

import (
	"time"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
)

type addressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

func (a addressDTO) toEntity() entity.Address {
	return entity.Address{
		Street:  a.Street,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
	}
}

func addressFromEntity(a entity.Address) addressDTO {
	return addressDTO{Street: a.Street, City: a.City, State: a.State, Zip: a.Zip, Country: a.Country}
}

type orderItemDTO struct {
	PhoneID  string  `json:"phoneId"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type orderDTO struct {
	ID          string         `json:"_id"`
	UserID      string         `json:"userId"`
	Items       []orderItemDTO `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	Address     addressDTO     `json:"address"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func orderFromEntity(o *entity.Order) orderDTO {
	items := make([]orderItemDTO, len(o.Items))
	for i, item := range o.Items {
		items[i] = orderItemDTO{
			PhoneID:  item.PhoneID,
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}
	return orderDTO{
		ID:          o.ID,
		UserID:      o.UserID,
		Items:       items,
		TotalAmount: o.TotalAmount,
		Address:     addressFromEntity(o.Address),
		CreatedAt:   o.CreatedAt,
	}
}

type cartLineDTO struct {
	PhoneID  string  `json:"phoneId"`
	Title    string  `json:"title"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type cartDTO struct {
	UserID      string        `json:"userId"`
	Lines       []cartLineDTO `json:"lines"`
	TotalAmount float64       `json:"totalAmount"`
}

func cartFromEntity(c *entity.Cart) cartDTO {
	lines := make([]cartLineDTO, len(c.Lines))
	var total float64
	for i, line := range c.Lines {
		lines[i] = cartLineDTO{
			PhoneID:  line.PhoneID,
			Title:    line.Title,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
		total += float64(line.Quantity) * line.Price
	}
	return cartDTO{UserID: c.UserID, Lines: lines, TotalAmount: total}
}

type reviewDTO struct {
	ReviewerID string    `json:"reviewerId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Hidden     bool      `json:"hidden"`
	CreatedAt  time.Time `json:"createdAt"`
}

type listingDTO struct {
	ID         string      `json:"_id"`
	SellerID   string      `json:"sellerId"`
	Title      string      `json:"title"`
	Brand      string      `json:"brand"`
	Price      float64     `json:"price"`
	Stock      int         `json:"stock"`
	SalesCount int         `json:"salesCount"`
	Reviews    []reviewDTO `json:"reviews"`
}

// listingFromEntity renders a listing for the given viewer. Hidden reviews
// are visible only to their author and the listing's seller.
func listingFromEntity(l *entity.Listing, viewerID string) listingDTO {
	reviews := make([]reviewDTO, 0, len(l.Reviews))
	for _, r := range l.Reviews {
		if r.Hidden && viewerID != r.ReviewerID && viewerID != l.SellerID {
			continue
		}
		reviews = append(reviews, reviewDTO{
			ReviewerID: r.ReviewerID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			Hidden:     r.Hidden,
			CreatedAt:  r.CreatedAt,
		})
	}
	return listingDTO{
		ID:         l.ID,
		SellerID:   l.SellerID,
		Title:      l.Title,
		Brand:      string(l.Brand),
		Price:      l.Price,
		Stock:      l.Stock,
		SalesCount: l.SalesCount,
		Reviews:    reviews,
	}
}
