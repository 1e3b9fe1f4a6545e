package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserRole enumerates the advisory roles on the platform. The role is plain
// data; no endpoint enforces it.
type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAdmin      UserRole = "admin"
)

// ViewStatus marks whether an admin has looked at a record yet.
type ViewStatus string

const (
	ViewSeen   ViewStatus = "seen"
	ViewUnseen ViewStatus = "unseen"
)

// User is a platform account, created on first login.
type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Photo  string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role   UserRole           `bson:"role" json:"role"`
	Status ViewStatus         `bson:"status" json:"status"`
}
