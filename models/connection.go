package models

import (
  "time"
)

type Connection struct {
  ID           string    `gorm:"size:20;primaryKey"`
  UserID       string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_connections_user_target,priority:1"`
  TargetUserID string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_connections_user_target,priority:2;index"`
  CircleID     string    `gorm:"size:20;not null;index"`
  CreatedAt    time.Time `gorm:"not null"`
  UpdatedAt    time.Time `gorm:"not null"`
}

func (m *Connection) TableName() string {
  return "openbook_connections"
}
