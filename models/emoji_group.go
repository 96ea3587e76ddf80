package models

import (
  "time"
)

type EmojiGroup struct {
  ID        string    `gorm:"size:20;primaryKey"`
  Keyword   string    `gorm:"size:50;not null;uniqueIndex"`
  Color     string    `gorm:"size:7;not null"`
  Position  int       `gorm:"not null;index"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *EmojiGroup) TableName() string {
  return "openbook_emoji_groups"
}
