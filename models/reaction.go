package models

import (
  "time"
)

type PostReaction struct {
  ID        string    `gorm:"size:20;primaryKey"`
  PostID    string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_posts_reactions_post_reactor,priority:1"`
  ReactorID string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_posts_reactions_post_reactor,priority:2;index"`
  EmojiID   string    `gorm:"size:20;not null;index"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *PostReaction) TableName() string {
  return "openbook_posts_reactions"
}
