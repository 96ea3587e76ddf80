package models

import (
  "gorm.io/gorm"
  "openbook.local/openbook-api/models/media"
)

type Media struct{}

func NewMedia() *Media {
  return &Media{}
}

func (m *Media) AutoMigrate(db *gorm.DB) error {
  db.AutoMigrate(
    &media.Image{},
    &media.Video{},
    &media.Format{},
  )
  return nil
}
