package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a dish on the public menu. The collection is seeded out of
// band; the API never writes to it.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
}
