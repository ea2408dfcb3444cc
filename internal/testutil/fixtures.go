package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/camphub/camphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given email and role.
func (f *Fixtures) CreateUser(ctx context.Context, email, role string) models.User {
	f.t.Helper()

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      "Test User",
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateClass creates a test class owned by the given instructor email.
func (f *Fixtures) CreateClass(ctx context.Context, name, instructorEmail string, status models.ClassStatus) models.Class {
	f.t.Helper()

	class := models.Class{
		ID:              primitive.NewObjectID(),
		Name:            name,
		InstructorName:  "Test Instructor",
		InstructorEmail: instructorEmail,
		Price:           49.99,
		AvailableSeats:  20,
		Status:          status,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := f.db.Collection("classes").InsertOne(ctx, class); err != nil {
		f.t.Fatalf("failed to create test class: %v", err)
	}
	return class
}

// CreateSelection creates a test selection for the given student and class.
func (f *Fixtures) CreateSelection(ctx context.Context, email, classID string) models.SelectedClass {
	f.t.Helper()

	sel := models.SelectedClass{
		ID:             primitive.NewObjectID(),
		Email:          email,
		ClassID:        classID,
		ClassName:      "Test Class",
		AvailableSeats: 20,
		CreatedAt:      time.Now().UTC(),
	}

	if _, err := f.db.Collection("selectedClasses").InsertOne(ctx, sel); err != nil {
		f.t.Fatalf("failed to create test selection: %v", err)
	}
	return sel
}

// CreateEnrollment creates a test enrollment record.
func (f *Fixtures) CreateEnrollment(ctx context.Context, email, classID string, amount int64) models.EnrolledClass {
	f.t.Helper()

	enr := models.EnrolledClass{
		ID:            primitive.NewObjectID(),
		Email:         email,
		ClassID:       classID,
		TransactionID: "txn-test",
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := f.db.Collection("paymentClasses").InsertOne(ctx, enr); err != nil {
		f.t.Fatalf("failed to create test enrollment: %v", err)
	}
	return enr
}
