package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/app/config"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/domain/entity"
	"github.com/steelbigcrow/TUT16-G4-OldPhoneDeals-sub001/internal/repository"
)

const orderCollectionName = "orders"

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.OrderRepository {
	return &orderRepository{
		collection: client.Database(cfg.Database).Collection(orderCollectionName),
	}
}

func (r *orderRepository) Create(ctx context.Context, params repository.CreateOrderParams) (string, error) {
	order := entity.Order{
		UserID:      params.UserID,
		Items:       params.Items,
		TotalAmount: params.TotalAmount,
		Address:     params.Address,
		CreatedAt:   time.Now().UTC(),
	}

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("failed to convert inserted ID to ObjectID")
	}
	return objectID.Hex(), nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID format: %w", repository.ErrNotFound)
	}

	var order entity.Order
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", orderID, err)
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, params repository.ListOrdersParams) (*repository.ListOrdersResult, error) {
	filter := bson.M{}
	if params.UserID != "" {
		filter["user_id"] = params.UserID
	}

	findOptions := options.Find()
	if params.PageSize > 0 {
		if params.Page <= 0 {
			params.Page = 1
		}
		findOptions.SetSkip(int64((params.Page - 1) * params.PageSize))
		findOptions.SetLimit(int64(params.PageSize))
	}

	if params.SortBy != "" {
		sortOrder := 1
		if params.SortOrder == "desc" {
			sortOrder = -1
		}
		findOptions.SetSort(bson.D{{Key: params.SortBy, Value: sortOrder}})
	} else {
		findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []entity.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode listed orders: %w", err)
	}

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (int(totalCount) + params.PageSize - 1) / params.PageSize
	} else if totalCount > 0 {
		totalPages = 1
	}

	return &repository.ListOrdersResult{
		Orders:      orders,
		TotalCount:  totalCount,
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalPages:  totalPages,
	}, nil
}

func (r *orderRepository) Delete(ctx context.Context, orderID string) error {
	objID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return fmt.Errorf("invalid order ID format: %w", repository.ErrNotFound)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete order %s: %v: %w", orderID, err, repository.ErrDeleteFailed)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
