package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/camphub/camphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadyExists is returned when an insert hits the unique email index.
var ErrAlreadyExists = errors.New("user already exists")

// Store is the users collection adapter.
type Store struct {
	coll *mongo.Collection
}

// New creates a Store over the users collection of the given database.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("users")}
}

// Create inserts a user document. The unique index on email turns a
// concurrent duplicate registration into ErrAlreadyExists instead of a
// second document; there is no separate existence check.
func (s *Store) Create(ctx context.Context, u models.User) (primitive.ObjectID, error) {
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()

	_, err := s.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrAlreadyExists
		}
		return primitive.NilObjectID, err
	}
	return u.ID, nil
}

// RoleByEmail returns the role of the user with the given email, or ""
// when the user does not exist or has no role set.
func (s *Store) RoleByEmail(ctx context.Context, email string) (string, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", err
	}
	return u.Role, nil
}

// List returns every user document.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetRole sets the role field on one user. A zero matched count means the
// id did not exist; that is passed through to the caller unchanged.
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) (matched, modified int64, err error) {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
