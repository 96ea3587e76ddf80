package models

import (
  "time"
)

type User struct {
  ID        string    `gorm:"size:20;primaryKey"`
  Username  string    `gorm:"size:30;not null;uniqueIndex"`
  Email     string    `gorm:"size:254;not null;uniqueIndex"`
  Password  string    `gorm:"size:128;not null"`
  Salt      string    `gorm:"size:64;not null"`
  Name      string    `gorm:"size:50;not null"`
  Birthdate string    `gorm:"size:10;not null"`
  Avatar    string    `gorm:"size:200;not null"`
  Status    int       `gorm:"not null;index"`
  CreatedAt time.Time `gorm:"not null;index"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *User) TableName() string {
  return "openbook_users"
}
