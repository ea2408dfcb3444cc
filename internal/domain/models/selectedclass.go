// internal/domain/models/selectedclass.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SelectedClass is a student's pending, unpaid choice of a class.
// ClassID is the hex id of the chosen class, copied by the client and not
// validated against the classes collection. A unique compound index on
// (email, class_id) prevents the same student selecting a class twice.
//
// Denormalized class fields (name, image, price, seats) are snapshots
// taken at selection time so the student dashboard can render without a
// join; the bulk seat update keeps available_seats roughly current.
type SelectedClass struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string             `bson:"email" json:"email"`
	ClassID        string             `bson:"class_id" json:"classId"`
	ClassName      string             `bson:"class_name,omitempty" json:"className,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Price          float64            `bson:"price,omitempty" json:"price,omitempty"`
	AvailableSeats int                `bson:"available_seats" json:"availableSeats"`
	InstructorName string             `bson:"instructor_name,omitempty" json:"instructorName,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
