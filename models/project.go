package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PublishStatus string

const (
	StatusDraft     PublishStatus = "draft"
	StatusPublished PublishStatus = "published"
)

func (s PublishStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

type Project struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string        `bson:"title" json:"title"`
	Slug             string        `bson:"slug" json:"slug"`
	Description      string        `bson:"description" json:"description"`
	ShortDescription string        `bson:"shortDescription" json:"shortDescription"`
	Technologies     []string      `bson:"technologies" json:"technologies"`
	Image            string        `bson:"image,omitempty" json:"image,omitempty"`
	GithubURL        string        `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	LiveURL          string        `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	Featured         bool          `bson:"featured" json:"featured"`
	Status           PublishStatus `bson:"status" json:"status"`
	Order            int           `bson:"order" json:"order"`
	CreatedAt        time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updatedAt" json:"updatedAt"`
}
