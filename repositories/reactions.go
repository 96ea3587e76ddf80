package repositories

import (
  "encoding/json"
  "errors"

  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
)

type ReactionsRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

type EmojiCount struct {
  EmojiID string `json:"emoji_id"`
  Count   int64  `json:"count"`
}

func (r *ReactionsRepository) Find(id string) (entity *models.PostReaction, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *ReactionsRepository) Get(postID string, reactorID string) (entity *models.PostReaction, err error) {
  err = r.Db.Where("post_id=? AND reactor_id=?", postID, reactorID).Take(&entity).Error
  return
}

func (r *ReactionsRepository) Count(postID string) int64 {
  var total int64
  r.Db.Model(&models.PostReaction{}).Where("post_id=?", postID).Count(&total)
  return total
}

func (r *ReactionsRepository) Listings(conditions map[string]interface{}, count int) []*models.PostReaction {
  var reactions []*models.PostReaction
  query := r.Db.Model(&models.PostReaction{})
  query.Where("post_id=?", conditions["post_id"].(string))
  if _, ok := conditions["emoji_id"]; ok {
    query.Where("emoji_id=?", conditions["emoji_id"].(string))
  }
  if _, ok := conditions["max_id"]; ok {
    query.Where("id<?", conditions["max_id"].(string))
  }
  query.Order("id desc")
  query.Limit(count).Find(&reactions)
  return reactions
}

func (r *ReactionsRepository) EmojiCounts(postID string) []*EmojiCount {
  var counts []*EmojiCount
  r.Db.Model(&models.PostReaction{}).Select(
    "emoji_id, count(id) as count",
  ).Where(
    "post_id=?",
    postID,
  ).Group(
    "emoji_id",
  ).Order(
    "count desc",
  ).Scan(&counts)
  return counts
}

func (r *ReactionsRepository) React(
  postID string,
  reactorID string,
  emojiID string,
) (id string, err error) {
  var entity *models.PostReaction
  result := r.Db.Where("post_id=? AND reactor_id=?", postID, reactorID).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    id = xid.New().String()
    entity = &models.PostReaction{
      ID:        id,
      PostID:    postID,
      ReactorID: reactorID,
      EmojiID:   emojiID,
    }
    err = r.Db.Create(&entity).Error
  } else {
    id = entity.ID
    if entity.EmojiID != emojiID {
      err = r.Db.Model(&entity).Update("emoji_id", emojiID).Error
    }
  }
  if err == nil && r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "id":      id,
      "post_id": postID,
    })
    r.Nats.Publish(config.NATS_REACTIONS_CREATE, data)
    r.Nats.Flush()
  }
  return
}

func (r *ReactionsRepository) Delete(id string) (err error) {
  err = r.Db.Delete(&models.PostReaction{ID: id}).Error
  return
}
