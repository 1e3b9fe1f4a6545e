package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CourseStatus tracks the moderation state of a course.
// pending -> accepted | rejected; either decision can later be overwritten.
type CourseStatus string

const (
	CoursePending  CourseStatus = "pending"
	CourseAccepted CourseStatus = "accepted"
	CourseRejected CourseStatus = "rejected"
)

// Course is offered by an instructor and moderated by an admin.
type Course struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName       string             `bson:"class_name" json:"class_name"`
	ClassImage      string             `bson:"class_image" json:"class_image"`
	InstructorName  string             `bson:"instructor_name" json:"instructor_name"`
	InstructorEmail string             `bson:"instructor_email" json:"instructor_email"`
	AvailableSeats  int                `bson:"available_seats" json:"available_seats"`
	Price           float64            `bson:"course_price" json:"course_price"`
	Status          CourseStatus       `bson:"status" json:"status"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	ViewStatus      ViewStatus         `bson:"view_status,omitempty" json:"view_status,omitempty"`
}
