package models

import (
  "time"
)

type PostCircle struct {
  ID        string    `gorm:"size:20;primaryKey"`
  PostID    string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_posts_circles_post_circle,priority:1"`
  CircleID  string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_posts_circles_post_circle,priority:2;index"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *PostCircle) TableName() string {
  return "openbook_posts_circles"
}
