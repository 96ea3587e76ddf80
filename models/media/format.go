package media

import (
  "time"
)

type Format struct {
  ID        string    `gorm:"size:20;primaryKey"`
  VideoID   string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_posts_video_formats_video,priority:1"`
  Format    string    `gorm:"size:20;not null;uniqueIndex:idx_openbook_posts_video_formats_video,priority:2"`
  Width     int       `gorm:"not null"`
  Height    int       `gorm:"not null"`
  Size      int64     `gorm:"not null"`
  Progress  int       `gorm:"not null"`
  Filehash  string    `gorm:"size:64;not null;index"`
  Extension string    `gorm:"size:10;not null"`
  Timestamp int64     `gorm:"not null"`
  Status    int       `gorm:"not null;index"`
  CreatedAt time.Time `gorm:"not null"`
  UpdatedAt time.Time `gorm:"not null"`
}

func (m *Format) TableName() string {
  return "openbook_posts_video_formats"
}
