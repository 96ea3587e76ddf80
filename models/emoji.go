package models

import (
  "time"
)

type Emoji struct {
  ID        string    `gorm:"size:20;primaryKey"`
  GroupID   string    `gorm:"size:20;not null;index:idx_openbook_emojis_group,priority:1"`
  Keyword   string    `gorm:"size:50;not null;index"`
  Image     string    `gorm:"size:200;not null"`
  Color     string    `gorm:"size:7;not null"`
  Position  int       `gorm:"not null;index:idx_openbook_emojis_group,priority:2"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Emoji) TableName() string {
  return "openbook_emojis"
}
