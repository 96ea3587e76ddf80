package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/models"
)

type ConnectionsRepository struct {
  Db *gorm.DB
}

func (r *ConnectionsRepository) Get(userID string, targetUserID string) (entity *models.Connection, err error) {
  err = r.Db.Where("user_id=? AND target_user_id=?", userID, targetUserID).Take(&entity).Error
  return
}

func (r *ConnectionsRepository) Listings(userID string, current int, pageSize int) []*models.Connection {
  var connections []*models.Connection
  r.Db.Where("user_id=?", userID).Order(
    "created_at desc",
  ).Offset((current - 1) * pageSize).Limit(pageSize).Find(&connections)
  return connections
}

func (r *ConnectionsRepository) Count(userID string) int64 {
  var total int64
  r.Db.Model(&models.Connection{}).Where("user_id=?", userID).Count(&total)
  return total
}

func (r *ConnectionsRepository) IsExists(userID string, targetUserID string) bool {
  var entity *models.Connection
  result := r.Db.Where("user_id=? AND target_user_id=?", userID, targetUserID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *ConnectionsRepository) Create(userID string, targetUserID string, circleID string) (id string, err error) {
  if userID == targetUserID {
    err = errors.New("cannot connect with yourself")
    return
  }
  if r.IsExists(userID, targetUserID) {
    err = errors.New("already connected")
    return
  }
  id = xid.New().String()
  entity := &models.Connection{
    ID:           id,
    UserID:       userID,
    TargetUserID: targetUserID,
    CircleID:     circleID,
  }
  err = r.Db.Create(&entity).Error
  return
}

func (r *ConnectionsRepository) Update(connection *models.Connection, column string, value interface{}) (err error) {
  r.Db.Model(&connection).Update(column, value)
  return nil
}

func (r *ConnectionsRepository) Delete(userID string, targetUserID string) (err error) {
  err = r.Db.Where(
    "user_id=? AND target_user_id=?",
    userID,
    targetUserID,
  ).Delete(&models.Connection{}).Error
  return
}
