package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const DefaultBlogReadTime = 5

type Blog struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string        `bson:"title" json:"title"`
	Slug          string        `bson:"slug" json:"slug"`
	Content       string        `bson:"content" json:"content"`
	Excerpt       string        `bson:"excerpt" json:"excerpt"`
	AuthorID      bson.ObjectID `bson:"author" json:"authorId"`
	AuthorName    string        `bson:"authorName" json:"authorName"`
	Tags          []string      `bson:"tags" json:"tags"`
	Status        PublishStatus `bson:"status" json:"status"`
	FeaturedImage string        `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	ReadTime      int           `bson:"readTime" json:"readTime"`
	Views         int64         `bson:"views" json:"views"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
