package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/models"
)

type EmojisRepository struct {
  Db *gorm.DB
}

func (r *EmojisRepository) Find(id string) (entity *models.Emoji, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *EmojisRepository) IsExists(id string) bool {
  var entity *models.Emoji
  result := r.Db.Where("id", id).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *EmojisRepository) Groups() []*models.EmojiGroup {
  var groups []*models.EmojiGroup
  r.Db.Order("position asc").Find(&groups)
  return groups
}

func (r *EmojisRepository) Listings(groupID string) []*models.Emoji {
  var emojis []*models.Emoji
  r.Db.Where("group_id=?", groupID).Order("position asc").Find(&emojis)
  return emojis
}

func (r *EmojisRepository) ApplyGroup(keyword string, color string, position int) (id string, err error) {
  var entity *models.EmojiGroup
  result := r.Db.Where("keyword", keyword).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    id = xid.New().String()
    entity = &models.EmojiGroup{
      ID:       id,
      Keyword:  keyword,
      Color:    color,
      Position: position,
    }
    err = r.Db.Create(&entity).Error
  } else {
    id = entity.ID
  }
  return
}

func (r *EmojisRepository) Apply(
  groupID string,
  keyword string,
  image string,
  color string,
  position int,
) (id string, err error) {
  var entity *models.Emoji
  result := r.Db.Where("group_id=? AND keyword=?", groupID, keyword).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    id = xid.New().String()
    entity = &models.Emoji{
      ID:       id,
      GroupID:  groupID,
      Keyword:  keyword,
      Image:    image,
      Color:    color,
      Position: position,
    }
    err = r.Db.Create(&entity).Error
  } else {
    id = entity.ID
  }
  return
}
