package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ContactMessage struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Subject   string        `bson:"subject" json:"subject"`
	Message   string        `bson:"message" json:"message"`
	Delivered bool          `bson:"delivered" json:"delivered"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// Upload describes an object stored through the configured object store.
type Upload struct {
	ObjectName string `json:"objectName"`
	PublicURL  string `json:"publicUrl"`
	MimeType   string `json:"mimeType"`
	SizeBytes  int64  `json:"sizeBytes"`
}
