package repositories

import (
  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/models"
)

type CommentsRepository struct {
  Db *gorm.DB
}

func (r *CommentsRepository) Find(id string) (entity *models.PostComment, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *CommentsRepository) Count(postID string) int64 {
  var total int64
  r.Db.Model(&models.PostComment{}).Where("post_id=?", postID).Count(&total)
  return total
}

func (r *CommentsRepository) Listings(conditions map[string]interface{}, count int) []*models.PostComment {
  var comments []*models.PostComment
  query := r.Db.Model(&models.PostComment{})
  query.Where("post_id=?", conditions["post_id"].(string))
  if _, ok := conditions["max_id"]; ok {
    query.Where("id<?", conditions["max_id"].(string))
  }
  query.Order("id desc")
  query.Limit(count).Find(&comments)
  return comments
}

func (r *CommentsRepository) Create(
  postID string,
  commenterID string,
  text string,
) (id string, err error) {
  id = xid.New().String()
  entity := &models.PostComment{
    ID:          id,
    PostID:      postID,
    CommenterID: commenterID,
    Text:        text,
  }
  err = r.Db.Create(&entity).Error
  return
}

func (r *CommentsRepository) Delete(id string) (err error) {
  err = r.Db.Delete(&models.PostComment{ID: id}).Error
  return
}
