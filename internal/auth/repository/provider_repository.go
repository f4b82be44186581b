package repository

import (
	"context"
	"errors"
	"fmt"

	authdomain "customers-backend/internal/auth/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// The collection name predates multi-provider support.
const providerLinksCollection = "google_authentication"

// providerLinkRepository implements ProviderLinkRepository on top of MongoDB.
type providerLinkRepository struct {
	coll *mongo.Collection
}

// NewProviderLinkRepository creates a new instance of providerLinkRepository.
func NewProviderLinkRepository(db *mongo.Database) ProviderLinkRepository {
	return &providerLinkRepository{
		coll: db.Collection(providerLinksCollection),
	}
}

// EnsureProviderLinkIndexes creates unique indexes on the two lookup keys
// of the link collection: email (handshake) and providerAccountId
// (token exchange).
func EnsureProviderLinkIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(providerLinksCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "providerAccountId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *providerLinkRepository) Create(ctx context.Context, link *authdomain.ProviderLink) error {
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return authdomain.ErrConflict
		}
		return fmt.Errorf("%w: insert provider link: %v", authdomain.ErrUpstream, err)
	}
	return nil
}

func (r *providerLinkRepository) FindByEmail(ctx context.Context, email string) (*authdomain.ProviderLink, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *providerLinkRepository) FindByProviderAccountID(ctx context.Context, providerAccountID string) (*authdomain.ProviderLink, error) {
	return r.findOne(ctx, bson.M{"providerAccountId": providerAccountID})
}

func (r *providerLinkRepository) findOne(ctx context.Context, filter bson.M) (*authdomain.ProviderLink, error) {
	var link authdomain.ProviderLink
	err := r.coll.FindOne(ctx, filter).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find provider link: %v", authdomain.ErrUpstream, err)
	}
	return &link, nil
}
