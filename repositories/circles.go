package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
)

type CirclesRepository struct {
  Db *gorm.DB
}

func (r *CirclesRepository) Find(id string) (entity *models.Circle, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *CirclesRepository) Get(creatorID string, name string) (entity *models.Circle, err error) {
  err = r.Db.Where("creator_id=? AND name=?", creatorID, name).Take(&entity).Error
  return
}

func (r *CirclesRepository) Listings(creatorID string) []*models.Circle {
  var circles []*models.Circle
  r.Db.Where(
    "creator_id=? OR id=?",
    creatorID,
    config.WORLD_CIRCLE_ID,
  ).Order("created_at asc").Find(&circles)
  return circles
}

func (r *CirclesRepository) IsExists(creatorID string, name string) bool {
  var entity *models.Circle
  result := r.Db.Where("creator_id=? AND name=?", creatorID, name).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *CirclesRepository) IsOwned(id string, creatorID string) bool {
  var entity *models.Circle
  result := r.Db.Where("id=? AND creator_id=?", id, creatorID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *CirclesRepository) Create(creatorID string, name string, color string) (id string, err error) {
  if r.IsExists(creatorID, name) {
    err = errors.New("circle already exists")
    return
  }
  id = xid.New().String()
  entity := &models.Circle{
    ID:        id,
    CreatorID: creatorID,
    Name:      name,
    Color:     color,
  }
  err = r.Db.Create(&entity).Error
  return
}

func (r *CirclesRepository) EnsureWorld() (err error) {
  var entity *models.Circle
  result := r.Db.Where("id", config.WORLD_CIRCLE_ID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    entity = &models.Circle{
      ID:    config.WORLD_CIRCLE_ID,
      Name:  "World",
      Color: "#ffffff",
    }
    err = r.Db.Create(&entity).Error
  }
  return
}

func (r *CirclesRepository) Updates(circle *models.Circle, values map[string]interface{}) (err error) {
  err = r.Db.Model(&circle).Updates(values).Error
  return
}

func (r *CirclesRepository) Delete(id string) (err error) {
  r.Db.Where("circle_id=?", id).Delete(&models.PostCircle{})
  r.Db.Where("circle_id=?", id).Delete(&models.Connection{})
  r.Db.Delete(&models.Circle{ID: id})
  return
}
