package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one add-to-cart action. It snapshots the menu item's fields at
// the time of the add and is owned by the email that created it. There is no
// write-time relation back to the menu collection.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
	Quantity   int                `bson:"quantity" json:"quantity"`
}
