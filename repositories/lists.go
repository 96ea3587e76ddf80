package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/models"
)

type ListsRepository struct {
  Db *gorm.DB
}

func (r *ListsRepository) Find(id string) (entity *models.List, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *ListsRepository) Listings(creatorID string) []*models.List {
  var lists []*models.List
  r.Db.Where("creator_id=?", creatorID).Order("created_at asc").Find(&lists)
  return lists
}

func (r *ListsRepository) IsExists(creatorID string, name string) bool {
  var entity *models.List
  result := r.Db.Where("creator_id=? AND name=?", creatorID, name).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *ListsRepository) IsOwned(id string, creatorID string) bool {
  var entity *models.List
  result := r.Db.Where("id=? AND creator_id=?", id, creatorID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *ListsRepository) Create(creatorID string, name string, emojiID string) (id string, err error) {
  if r.IsExists(creatorID, name) {
    err = errors.New("list already exists")
    return
  }
  id = xid.New().String()
  entity := &models.List{
    ID:        id,
    CreatorID: creatorID,
    Name:      name,
    EmojiID:   emojiID,
  }
  err = r.Db.Create(&entity).Error
  return
}

func (r *ListsRepository) Updates(list *models.List, values map[string]interface{}) (err error) {
  err = r.Db.Model(&list).Updates(values).Error
  return
}

func (r *ListsRepository) Delete(id string) (err error) {
  r.Db.Model(&models.Follow{}).Where("list_id=?", id).Update("list_id", "")
  r.Db.Delete(&models.List{ID: id})
  return
}
