package models

import (
  "time"
)

type PostComment struct {
  ID          string    `gorm:"size:20;primaryKey"`
  PostID      string    `gorm:"size:20;not null;index:idx_openbook_posts_comments_post,priority:1"`
  CommenterID string    `gorm:"size:20;not null;index"`
  Text        string    `gorm:"size:1500;not null"`
  CreatedAt   time.Time `gorm:"not null;index:idx_openbook_posts_comments_post,priority:2"`
  UpdatedAt   time.Time `gorm:"not null"`
}

func (m *PostComment) TableName() string {
  return "openbook_posts_comments"
}
