package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelectedCourse is a student's checkout selection. It denormalises the
// course fields the checkout page renders and is deleted after payment.
type SelectedCourse struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail       string             `bson:"user_email" json:"user_email"`
	CourseID        primitive.ObjectID `bson:"course_id" json:"course_id"`
	ClassName       string             `bson:"class_name" json:"class_name"`
	ClassImage      string             `bson:"class_image,omitempty" json:"class_image,omitempty"`
	InstructorEmail string             `bson:"instructor_email" json:"instructor_email"`
	Price           float64            `bson:"price" json:"price"`
}
