package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultGuideReadTime = 10

type Guide struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string        `bson:"title" json:"title"`
	Slug       string        `bson:"slug" json:"slug"`
	Content    string        `bson:"content" json:"content"`
	ProjectID  bson.ObjectID `bson:"project" json:"projectId"`
	AuthorID   bson.ObjectID `bson:"author" json:"authorId"`
	AuthorName string        `bson:"authorName" json:"authorName"`
	Status     PublishStatus `bson:"status" json:"status"`
	ReadTime   int           `bson:"readTime" json:"readTime"`
	Views      int64         `bson:"views" json:"views"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}
