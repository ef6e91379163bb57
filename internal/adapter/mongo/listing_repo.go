package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/app/config"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const listingCollectionName = "listings"

type listingDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	SellerID   string             `bson:"seller_id"`
	Title      string             `bson:"title"`
	Brand      string             `bson:"brand"`
	Price      float64            `bson:"price"`
	Stock      int                `bson:"stock"`
	Disabled   bool               `bson:"disabled"`
	SalesCount int                `bson:"sales_count"`
	Reviews    []entity.Review    `bson:"reviews"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *listingDocument) toEntity() *entity.Listing {
	return &entity.Listing{
		ID:         d.ID.Hex(),
		SellerID:   d.SellerID,
		Title:      d.Title,
		Brand:      entity.Brand(d.Brand),
		Price:      d.Price,
		Stock:      d.Stock,
		Disabled:   d.Disabled,
		SalesCount: d.SalesCount,
		Reviews:    d.Reviews,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type listingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.ListingRepository {
	return &listingRepository{
		collection: client.Database(cfg.Database).Collection(listingCollectionName),
	}
}

func (r *listingRepository) GetByID(ctx context.Context, listingID string) (*entity.Listing, error) {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return nil, fmt.Errorf("invalid listing ID format: %w", repository.ErrNotFound)
	}

	var doc listingDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get listing by ID %s: %w", listingID, err)
	}
	return doc.toEntity(), nil
}

// DecrementStockAndIncrementSales commits a purchase of the given quantity
// in a single conditional update. The stock >= quantity filter makes the
// decrement atomic at the storage layer: two concurrent checkouts can both
// pass the read-only validation, but only one can win the decrement once
// stock runs out.
func (r *listingRepository) DecrementStockAndIncrementSales(ctx context.Context, listingID string, quantity int) error {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return fmt.Errorf("invalid listing ID format: %w", repository.ErrNotFound)
	}
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive: %w", repository.ErrUpdateFailed)
	}

	filter := bson.M{
		"_id":   objID,
		"stock": bson.M{"$gte": quantity},
	}
	update := bson.M{
		"$inc": bson.M{"stock": -quantity, "sales_count": quantity},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to decrement stock for listing %s: %w", listingID, err)
	}

	if result.MatchedCount == 0 {
		// Distinguish a vanished listing from one that ran out of stock.
		count, errCount := r.collection.CountDocuments(ctx, bson.M{"_id": objID})
		if errCount != nil {
			return fmt.Errorf("failed to check listing %s existence: %w", listingID, errCount)
		}
		if count == 0 {
			return repository.ErrNotFound
		}
		return repository.ErrInsufficientStock
	}
	return nil
}

func (r *listingRepository) RestoreStock(ctx context.Context, listingID string, quantity int) error {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return fmt.Errorf("invalid listing ID format: %w", repository.ErrNotFound)
	}

	update := bson.M{
		"$inc": bson.M{"stock": quantity, "sales_count": -quantity},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to restore stock for listing %s: %w", listingID, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *listingRepository) AddReview(ctx context.Context, listingID string, review entity.Review) error {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return fmt.Errorf("invalid listing ID format: %w", repository.ErrNotFound)
	}

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to add review to listing %s: %w", listingID, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *listingRepository) SetReviewHidden(ctx context.Context, listingID string, reviewIndex int, hidden bool) error {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return fmt.Errorf("invalid listing ID format: %w", repository.ErrNotFound)
	}
	if reviewIndex < 0 {
		return fmt.Errorf("review index out of range: %w", repository.ErrNotFound)
	}

	field := fmt.Sprintf("reviews.%d.hidden", reviewIndex)
	filter := bson.M{
		"_id": objID,
		// Matches only when the indexed review element exists.
		fmt.Sprintf("reviews.%d", reviewIndex): bson.M{"$exists": true},
	}
	update := bson.M{
		"$set": bson.M{field: hidden, "updated_at": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set review hidden flag on listing %s: %w", listingID, err)
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
