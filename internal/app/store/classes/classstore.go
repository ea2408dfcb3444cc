package classstore

import (
	"context"
	"time"

	"github.com/camphub/camphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store is the classes collection adapter.
type Store struct {
	coll *mongo.Collection
}

// New creates a Store over the classes collection of the given database.
func New(db *mongo.Database) *Store {
	return &Store{coll: db.Collection("classes")}
}

// Insert stores a new class document and returns its id.
func (s *Store) Insert(ctx context.Context, c models.Class) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now().UTC()

	if _, err := s.coll.InsertOne(ctx, c); err != nil {
		return primitive.NilObjectID, err
	}
	return c.ID, nil
}

// ListByInstructor returns the classes owned by the given instructor
// email, regardless of status.
func (s *Store) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	return s.list(ctx, bson.M{"instructor_email": email})
}

// ListAll returns every class document.
func (s *Store) ListAll(ctx context.Context) ([]models.Class, error) {
	return s.list(ctx, bson.M{})
}

// ListApproved returns only classes whose status equals "approved".
func (s *Store) ListApproved(ctx context.Context) ([]models.Class, error) {
	return s.list(ctx, bson.M{"status": models.StatusApproved})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Class, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var classes []models.Class
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

// SetStatus sets the approval status of one class.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClassStatus) (matched, modified int64, err error) {
	return s.setField(ctx, id, "status", status)
}

// SetFeedback sets the admin feedback text of one class.
func (s *Store) SetFeedback(ctx context.Context, id primitive.ObjectID, feedback string) (matched, modified int64, err error) {
	return s.setField(ctx, id, "feedback", feedback)
}

// SetAvailableSeats sets the seat count of one class. Callers are trusted
// to compute the new count; no non-negativity check is applied.
func (s *Store) SetAvailableSeats(ctx context.Context, id primitive.ObjectID, seats int) (matched, modified int64, err error) {
	return s.setField(ctx, id, "available_seats", seats)
}

// SetEnrolled sets the enrolled count of one class.
func (s *Store) SetEnrolled(ctx context.Context, id primitive.ObjectID, enrolled int) (matched, modified int64, err error) {
	return s.setField(ctx, id, "enrolled", enrolled)
}

func (s *Store) setField(ctx context.Context, id primitive.ObjectID, field string, value any) (int64, int64, error) {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}
