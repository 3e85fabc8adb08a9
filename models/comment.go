package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is a reply to a news article. It cannot outlive either its article
// or its author: both foreign keys cascade on delete.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NewsID    uint      `gorm:"index;not null" json:"news_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author"`
}

// BeforeCreate stamps CreatedAt once at creation.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return nil
}
