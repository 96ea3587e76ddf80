package repositories

import (
  "encoding/json"
  "errors"

  "github.com/nats-io/nats.go"
  "github.com/rs/xid"
  "gorm.io/gorm"

  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
  media "openbook.local/openbook-api/models/media"
)

type PostsRepository struct {
  Db   *gorm.DB
  Nats *nats.Conn
}

func (r *PostsRepository) Find(id string) (entity *models.Post, err error) {
  err = r.Db.First(&entity, "id=?", id).Error
  return
}

func (r *PostsRepository) Count(conditions map[string]interface{}) int64 {
  var total int64
  query := r.Db.Model(&models.Post{})
  if _, ok := conditions["creator_id"]; ok {
    query.Where("creator_id=?", conditions["creator_id"].(string))
  }
  if _, ok := conditions["status"]; ok {
    query.Where("status", conditions["status"].(int))
  } else {
    query.Where("status=1")
  }
  query.Count(&total)
  return total
}

func (r *PostsRepository) Timeline(conditions map[string]interface{}, count int) []*models.Post {
  var posts []*models.Post
  query := r.Db.Model(&models.Post{})

  var viewerID string
  if _, ok := conditions["viewer_id"]; ok {
    viewerID = conditions["viewer_id"].(string)
  }

  if viewerID == "" {
    creators := r.Db.Model(&models.User{}).Select([]string{"id"})
    creators.Where("username=?", conditions["username"].(string))
    query.Where("creator_id IN(?)", creators)

    worldPosts := r.Db.Model(&models.PostCircle{}).Select([]string{"post_id"})
    worldPosts.Where("circle_id=?", config.WORLD_CIRCLE_ID)
    query.Where("id IN(?)", worldPosts)
  } else {
    if _, ok := conditions["username"]; ok {
      creators := r.Db.Model(&models.User{}).Select([]string{"id"})
      creators.Where("username=?", conditions["username"].(string))
      query.Where("creator_id IN(?)", creators)
    } else if _, ok := conditions["circle_ids"]; ok {
      creators := r.Db.Model(&models.Connection{}).Select([]string{"target_user_id"})
      creators.Where("user_id=?", viewerID)
      creators.Where("circle_id IN ?", conditions["circle_ids"].([]string))
      query.Where("creator_id IN(?)", creators)
    } else if _, ok := conditions["list_ids"]; ok {
      creators := r.Db.Model(&models.Follow{}).Select([]string{"followed_user_id"})
      creators.Where("user_id=?", viewerID)
      creators.Where("list_id IN ?", conditions["list_ids"].([]string))
      query.Where("creator_id IN(?)", creators)
    } else {
      followed := r.Db.Model(&models.Follow{}).Select([]string{"followed_user_id"})
      followed.Where("user_id=?", viewerID)
      connected := r.Db.Model(&models.Connection{}).Select([]string{"target_user_id"})
      connected.Where("user_id=?", viewerID)
      query.Where(
        "creator_id=? OR creator_id IN(?) OR creator_id IN(?)",
        viewerID,
        followed,
        connected,
      )
    }

    worldPosts := r.Db.Model(&models.PostCircle{}).Select([]string{"post_id"})
    worldPosts.Where("circle_id=?", config.WORLD_CIRCLE_ID)
    encircled := r.Db.Model(&models.Connection{}).Select([]string{"circle_id"})
    encircled.Where("target_user_id=?", viewerID)
    encircledPosts := r.Db.Model(&models.PostCircle{}).Select([]string{"post_id"})
    encircledPosts.Where("circle_id IN(?)", encircled)
    query.Where(
      "creator_id=? OR id IN(?) OR id IN(?)",
      viewerID,
      worldPosts,
      encircledPosts,
    )
  }

  if _, ok := conditions["max_id"]; ok {
    query.Where("id<?", conditions["max_id"].(string))
  }
  query.Where("status=1")
  query.Order("id desc")
  query.Limit(count).Find(&posts)
  return posts
}

func (r *PostsRepository) Trending(limit int) []*models.Post {
  var posts []*models.Post
  worldPosts := r.Db.Model(&models.PostCircle{}).Select([]string{"post_id"})
  worldPosts.Where("circle_id=?", config.WORLD_CIRCLE_ID)
  query := r.Db.Model(&models.Post{}).Select(
    "openbook_posts.*, count(openbook_posts_reactions.id) as reactions_count",
  ).Joins(
    "LEFT JOIN openbook_posts_reactions ON openbook_posts_reactions.post_id=openbook_posts.id",
  )
  query.Where("openbook_posts.id IN(?)", worldPosts)
  query.Where("openbook_posts.status=1")
  query.Group("openbook_posts.id")
  query.Order("reactions_count desc, openbook_posts.created_at desc")
  query.Limit(limit).Find(&posts)
  return posts
}

func (r *PostsRepository) IsPublic(id string) bool {
  var total int64
  r.Db.Model(&models.PostCircle{}).Where(
    "post_id=? AND circle_id=?",
    id,
    config.WORLD_CIRCLE_ID,
  ).Count(&total)
  return total > 0
}

func (r *PostsRepository) IsVisible(post *models.Post, viewerID string) bool {
  if viewerID != "" && post.CreatorID == viewerID {
    return true
  }
  if r.IsPublic(post.ID) {
    return true
  }
  if viewerID == "" {
    return false
  }
  return r.IsEncircled(post.ID, viewerID)
}

func (r *PostsRepository) IsEncircled(id string, viewerID string) bool {
  encircled := r.Db.Model(&models.Connection{}).Select([]string{"circle_id"})
  encircled.Where("target_user_id=?", viewerID)
  var total int64
  query := r.Db.Model(&models.PostCircle{})
  query.Where("post_id=?", id)
  query.Where("circle_id IN(?)", encircled)
  query.Count(&total)
  return total > 0
}

func (r *PostsRepository) CircleIDs(id string) []string {
  var circleIDs []string
  r.Db.Model(&models.PostCircle{}).Where("post_id=?", id).Pluck("circle_id", &circleIDs)
  return circleIDs
}

func (r *PostsRepository) Create(
  creatorID string,
  text string,
  circleIDs []string,
) (id string, err error) {
  id = xid.New().String()
  entity := &models.Post{
    ID:              id,
    CreatorID:       creatorID,
    Text:            text,
    PublicComments:  true,
    PublicReactions: true,
    Status:          1,
  }
  err = r.Db.Create(&entity).Error
  if err != nil {
    return
  }
  if len(circleIDs) == 0 {
    circleIDs = []string{config.WORLD_CIRCLE_ID}
  }
  for _, circleID := range circleIDs {
    r.Db.Create(&models.PostCircle{
      ID:       xid.New().String(),
      PostID:   id,
      CircleID: circleID,
    })
  }
  if r.Nats != nil {
    data, _ := json.Marshal(map[string]interface{}{
      "id": id,
    })
    r.Nats.Publish(config.NATS_POSTS_CREATE, data)
    r.Nats.Flush()
  }
  return
}

func (r *PostsRepository) IsExists(id string) bool {
  var entity *models.Post
  result := r.Db.Where("id", id).Take(&entity)
  if errors.Is(result.Error, gorm.ErrRecordNotFound) {
    return false
  }
  return true
}

func (r *PostsRepository) Update(post *models.Post, column string, value interface{}) (err error) {
  r.Db.Model(&post).Update(column, value)
  return nil
}

func (r *PostsRepository) Updates(post *models.Post, values map[string]interface{}) (err error) {
  err = r.Db.Model(&post).Updates(values).Error
  return
}

func (r *PostsRepository) Delete(id string) (err error) {
  r.Db.Where("post_id=?", id).Delete(&models.PostComment{})
  r.Db.Where("post_id=?", id).Delete(&models.PostReaction{})
  r.Db.Where("post_id=?", id).Delete(&models.PostCircle{})
  videos := r.Db.Model(&media.Video{}).Select([]string{"id"})
  videos.Where("post_id=?", id)
  r.Db.Where("video_id IN(?)", videos).Delete(&media.Format{})
  r.Db.Where("post_id=?", id).Delete(&media.Video{})
  r.Db.Where("post_id=?", id).Delete(&media.Image{})
  err = r.Db.Delete(&models.Post{ID: id}).Error
  return
}
