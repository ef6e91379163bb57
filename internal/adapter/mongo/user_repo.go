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

const userCollectionName = "users"

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstname"`
	LastName  string             `bson:"lastname"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Role:      d.Role,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(client *mongo.Client, cfg config.MongoDBConfig) repository.UserRepository {
	return &userRepository{
		collection: client.Database(cfg.Database).Collection(userCollectionName),
	}
}

func (r *userRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format: %w", repository.ErrNotFound)
	}

	var doc userDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", userID, err)
	}
	return doc.toEntity(), nil
}
