// internal/domain/models/class.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassStatus is the approval state of a class. New classes start as
// pending and an admin moves them to approved or denied.
type ClassStatus string

const (
	StatusPending  ClassStatus = "pending"
	StatusApproved ClassStatus = "approved"
	StatusDenied   ClassStatus = "denied"
)

// Class is a course offered by an instructor. InstructorEmail is the
// owner key used for the instructor's "my classes" listing.
type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName  string             `bson:"instructor_name,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"instructor_email" json:"instructorEmail"`
	Price           float64            `bson:"price" json:"price"`
	AvailableSeats  int                `bson:"available_seats" json:"availableSeats"`
	Enrolled        int                `bson:"enrolled" json:"enrolled"`
	Status          ClassStatus        `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
