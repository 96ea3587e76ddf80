package tasks_test

import (
  "context"
  "fmt"
  "testing"

  "github.com/alicebob/miniredis/v2"
  "github.com/go-redis/redis/v8"
  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
  "openbook.local/openbook-api/tasks"
)

func TestPostsCleanEmojiCounts(t *testing.T) {
  db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
  require.NoError(t, err)
  require.NoError(t, db.AutoMigrate(
    &models.User{},
    &models.Post{},
    &models.PostCircle{},
    &models.Circle{},
  ))
  circles := &repositories.CirclesRepository{Db: db}
  require.NoError(t, circles.EnsureWorld())

  users := &repositories.UsersRepository{Db: db}
  uid, err := users.Create("alice", "alice@example.com", "secret123", "Alice", "", "")
  require.NoError(t, err)

  posts := &repositories.PostsRepository{Db: db}
  postID, err := posts.Create(uid, "hello", nil)
  require.NoError(t, err)

  mr := miniredis.RunT(t)
  rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

  liveKey := fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, postID)
  staleKey := fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, "00000000000000000009")
  require.NoError(t, mr.Set(liveKey, "[]"))
  require.NoError(t, mr.Set(staleKey, "[]"))

  task := tasks.NewPostsTask(&common.AnsqClientContext{
    Db:  db,
    Rdb: rdb,
    Ctx: context.Background(),
  })
  require.NoError(t, task.CleanEmojiCounts())

  assert.True(t, mr.Exists(liveKey))
  assert.False(t, mr.Exists(staleKey))
}
