package media

import (
  "time"
)

type Image struct {
  ID        string    `gorm:"size:20;primaryKey"`
  PostID    string    `gorm:"size:20;not null;uniqueIndex"`
  Mime      string    `gorm:"size:30;not null"`
  Width     int       `gorm:"not null"`
  Height    int       `gorm:"not null"`
  Size      int64     `gorm:"not null;index:idx_openbook_posts_images_sync,priority:1"`
  Node      int       `gorm:"not null;index:idx_openbook_posts_images_sync,priority:2"`
  CloudUrl  string    `gorm:"size:155;not null"`
  Filehash  string    `gorm:"size:64;not null;index"`
  Extension string    `gorm:"size:10;not null"`
  IsSynced  bool      `gorm:"not null;index:idx_openbook_posts_images_sync,priority:3"`
  Timestamp int64     `gorm:"not null;index:idx_openbook_posts_images,priority:1"`
  Status    int       `gorm:"not null;index:idx_openbook_posts_images,priority:2"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Image) TableName() string {
  return "openbook_posts_images"
}
