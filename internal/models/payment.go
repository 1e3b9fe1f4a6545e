package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. Immutable once inserted.
type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail       string             `bson:"user_email" json:"user_email"`
	UserName        string             `bson:"user_name,omitempty" json:"user_name,omitempty"`
	InstructorEmail string             `bson:"instructor_email" json:"instructor_email"`
	CourseID        primitive.ObjectID `bson:"course_id" json:"course_id"`
	ClassName       string             `bson:"class_name" json:"class_name"`
	Amount          float64            `bson:"amount" json:"amount"`
	Currency        string             `bson:"currency" json:"currency"`
	TransactionID   string             `bson:"transaction_id" json:"transaction_id"`
	Date            time.Time          `bson:"date" json:"date"`
}
