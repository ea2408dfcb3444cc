// internal/domain/models/enrolledclass.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrolledClass is the enrollment record persisted after a successful
// payment confirmation. Amount is in minor units (cents). The server
// assigns TransactionID when the client does not supply one.
type EnrolledClass struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email           string             `bson:"email" json:"email"`
	ClassID         string             `bson:"class_id" json:"classId"`
	ClassName       string             `bson:"class_name,omitempty" json:"className,omitempty"`
	TransactionID   string             `bson:"transaction_id" json:"transactionId"`
	PaymentIntentID string             `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	Amount          int64              `bson:"amount" json:"amount"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
