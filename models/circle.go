package models

import (
  "time"
)

type Circle struct {
  ID        string    `gorm:"size:20;primaryKey"`
  CreatorID string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_circles_creator_name,priority:1"`
  Name      string    `gorm:"size:100;not null;uniqueIndex:idx_openbook_circles_creator_name,priority:2"`
  Color     string    `gorm:"size:7;not null"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Circle) TableName() string {
  return "openbook_circles"
}
