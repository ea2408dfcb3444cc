package enrollmentstore

import (
	"context"
	"time"

	"github.com/camphub/camphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the paymentClasses collection adapter. Documents here are the
// enrollment records written after a successful payment.
type Store struct {
	coll *mongo.Collection
}

// New creates a Store over the paymentClasses collection.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("paymentClasses")}
}

// Insert stores an enrollment record and returns its id.
func (s *Store) Insert(ctx context.Context, e models.EnrolledClass) (primitive.ObjectID, error) {
	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now().UTC()

	if _, err := s.coll.InsertOne(ctx, e); err != nil {
		return primitive.NilObjectID, err
	}
	return e.ID, nil
}

// ListByEmail returns the enrollment records for a student.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.EnrolledClass, error) {
	cur, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var enrollments []models.EnrolledClass
	if err := cur.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}
