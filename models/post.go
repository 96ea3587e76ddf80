package models

import (
  "time"
)

type Post struct {
  ID              string    `gorm:"size:20;primaryKey"`
  CreatorID       string    `gorm:"size:20;not null;index:idx_openbook_posts_creator,priority:1"`
  Text            string    `gorm:"size:560;not null"`
  PublicComments  bool      `gorm:"not null;default:true"`
  PublicReactions bool      `gorm:"not null;default:true"`
  Status          int       `gorm:"not null;index:idx_openbook_posts_creator,priority:2"`
  CreatedAt       time.Time `gorm:"not null;index"`
  UpdatedAt       time.Time `gorm:"not null"`
}

func (m *Post) TableName() string {
  return "openbook_posts"
}
