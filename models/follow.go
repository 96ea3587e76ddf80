package models

import (
  "time"
)

type Follow struct {
  ID             string    `gorm:"size:20;primaryKey"`
  UserID         string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_follows_user_followed,priority:1"`
  FollowedUserID string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_follows_user_followed,priority:2;index"`
  ListID         string    `gorm:"size:20;not null;index"`
  CreatedAt      time.Time `gorm:"not null"`
  UpdatedAt      time.Time `gorm:"not null"`
}

func (m *Follow) TableName() string {
  return "openbook_follows"
}
