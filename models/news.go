package models

import (
	"time"

	"gorm.io/gorm"
)

// News is an article written by exactly one author. The author is assigned
// at creation time from the authenticated requester and is never editable;
// the same holds for PublishedDate.
type News struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	AuthorID      uint      `gorm:"index;not null" json:"author_id"`
	PublishedDate time.Time `gorm:"index" json:"published_date"`
	Author        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
	Comments      []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"comments"`
}

// TableName keeps the table name singular; "news" has no plural form.
func (News) TableName() string { return "news" }

// BeforeCreate stamps PublishedDate once at creation.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.PublishedDate.IsZero() {
		n.PublishedDate = time.Now()
	}
	return nil
}
