package selectionstore

import (
	"context"
	"errors"
	"time"

	"github.com/camphub/camphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadyExists is returned when an insert hits the unique
// (email, class_id) index, i.e. the student already selected this class.
var ErrAlreadyExists = errors.New("selection already exists")

// Store is the selectedClasses collection adapter.
type Store struct {
	coll *mongo.Collection
}

// New creates a Store over the selectedClasses collection.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("selectedClasses")}
}

// Insert stores a selection. The unique compound index makes a duplicate
// (email, classId) pair fail with ErrAlreadyExists even under concurrent
// requests.
func (s *Store) Insert(ctx context.Context, sel models.SelectedClass) (primitive.ObjectID, error) {
	sel.ID = primitive.NewObjectID()
	sel.CreatedAt = time.Now().UTC()

	_, err := s.coll.InsertOne(ctx, sel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrAlreadyExists
		}
		return primitive.NilObjectID, err
	}
	return sel.ID, nil
}

// ListByEmail returns a student's selections.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]models.SelectedClass, error) {
	cur, err := s.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var selections []models.SelectedClass
	if err := cur.All(ctx, &selections); err != nil {
		return nil, err
	}
	return selections, nil
}

// Delete removes one selection by id and returns the deleted count.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// SetSeatsByClass sets available_seats on every selection referencing the
// given class id. This is the denormalized half of a seat-count change;
// the classes collection is updated by a separate, non-transactional
// write.
func (s *Store) SetSeatsByClass(ctx context.Context, classID string, seats int) (matched, modified int64, err error) {
	res, err := s.coll.UpdateMany(ctx, bson.M{"class_id": classID}, bson.M{"$set": bson.M{"available_seats": seats}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
