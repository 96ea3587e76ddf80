package repositories

import (
  "errors"

  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/models"
)

type FollowsRepository struct {
  Db *gorm.DB
}

func (r *FollowsRepository) Get(userID string, followedUserID string) (entity *models.Follow, err error) {
  err = r.Db.Where("user_id=? AND followed_user_id=?", userID, followedUserID).Take(&entity).Error
  return
}

func (r *FollowsRepository) Listings(userID string, current int, pageSize int) []*models.Follow {
  var follows []*models.Follow
  r.Db.Where("user_id=?", userID).Order(
    "created_at desc",
  ).Offset((current - 1) * pageSize).Limit(pageSize).Find(&follows)
  return follows
}

func (r *FollowsRepository) Count(userID string) int64 {
  var total int64
  r.Db.Model(&models.Follow{}).Where("user_id=?", userID).Count(&total)
  return total
}

func (r *FollowsRepository) IsExists(userID string, followedUserID string) bool {
  var entity *models.Follow
  result := r.Db.Where("user_id=? AND followed_user_id=?", userID, followedUserID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *FollowsRepository) Create(userID string, followedUserID string, listID string) (id string, err error) {
  if userID == followedUserID {
    err = errors.New("cannot follow yourself")
    return
  }
  if r.IsExists(userID, followedUserID) {
    err = errors.New("already following")
    return
  }
  id = xid.New().String()
  entity := &models.Follow{
    ID:             id,
    UserID:         userID,
    FollowedUserID: followedUserID,
    ListID:         listID,
  }
  err = r.Db.Create(&entity).Error
  return
}

func (r *FollowsRepository) Update(follow *models.Follow, column string, value interface{}) (err error) {
  r.Db.Model(&follow).Update(column, value)
  return nil
}

func (r *FollowsRepository) Delete(userID string, followedUserID string) (err error) {
  err = r.Db.Where(
    "user_id=? AND followed_user_id=?",
    userID,
    followedUserID,
  ).Delete(&models.Follow{}).Error
  return
}
