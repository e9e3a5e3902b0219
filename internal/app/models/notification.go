package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	UserID    string                 `bson:"userId"`
	UserEmail string                 `bson:"userEmail,omitempty"`
	Type      string                 `bson:"type"`
	Title     string                 `bson:"title"`
	Message   string                 `bson:"message"`
	Data      map[string]interface{} `bson:"data,omitempty"`
	IsRead    bool                   `bson:"isRead"`
	EmailSent bool                   `bson:"emailSent"`

	TimeModel `bson:",inline"`
}
