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
	"golang.org/x/crypto/bcrypt"
)

const customersCollection = "customers"

// customerRepository implements CustomerRepository on top of MongoDB.
type customerRepository struct {
	coll *mongo.Collection
}

// NewCustomerRepository creates a new instance of customerRepository.
func NewCustomerRepository(db *mongo.Database) CustomerRepository {
	return &customerRepository{
		coll: db.Collection(customersCollection),
	}
}

// EnsureCustomerIndexes creates the unique email index the registration
// flow relies on. Duplicate inserts then surface as ErrConflict instead
// of racing past the pre-check.
func EnsureCustomerIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(customersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *customerRepository) Create(ctx context.Context, customer *authdomain.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return authdomain.ErrConflict
		}
		return fmt.Errorf("%w: insert customer: %v", authdomain.ErrUpstream, err)
	}
	return nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*authdomain.Customer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *customerRepository) FindByID(ctx context.Context, id string) (*authdomain.Customer, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *customerRepository) findOne(ctx context.Context, filter bson.M) (*authdomain.Customer, error) {
	var customer authdomain.Customer
	err := r.coll.FindOne(ctx, filter).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: find customer: %v", authdomain.ErrUpstream, err)
	}
	return &customer, nil
}

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
