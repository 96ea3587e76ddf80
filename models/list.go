package models

import (
  "time"
)

type List struct {
  ID        string    `gorm:"size:20;primaryKey"`
  CreatorID string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_lists_creator_name,priority:1"`
  Name      string    `gorm:"size:100;not null;uniqueIndex:idx_openbook_lists_creator_name,priority:2"`
  EmojiID   string    `gorm:"size:20;not null"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *List) TableName() string {
  return "openbook_lists"
}
