package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role gates access to administrative endpoints.
type Role string

const (
	// RoleRegular is the default. Stored as an absent/empty field so that
	// documents written by older clients keep their meaning.
	RoleRegular Role = ""
	RoleAdmin   Role = "admin"
)

// User is an account created on register or social login. Email is the
// logical key, enforced by a unique index on the users collection.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Role  Role               `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
