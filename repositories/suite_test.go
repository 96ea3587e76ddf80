package repositories_test

import (
  "testing"

  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
)

func testDB(t *testing.T) *gorm.DB {
  t.Helper()
  db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
  require.NoError(t, err)
  err = db.AutoMigrate(
    &models.User{},
    &models.Post{},
    &models.PostCircle{},
    &models.PostComment{},
    &models.PostReaction{},
    &models.Circle{},
    &models.List{},
    &models.Follow{},
    &models.Connection{},
    &models.Emoji{},
    &models.EmojiGroup{},
    &models.Task{},
  )
  require.NoError(t, err)
  require.NoError(t, models.NewMedia().AutoMigrate(db))
  circles := &repositories.CirclesRepository{Db: db}
  require.NoError(t, circles.EnsureWorld())
  return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
  t.Helper()
  r := &repositories.UsersRepository{Db: db}
  id, err := r.Create(username, username+"@example.com", "secret123", username, "", "")
  require.NoError(t, err)
  user, err := r.Find(id)
  require.NoError(t, err)
  return user
}

func createEmoji(t *testing.T, db *gorm.DB, keyword string) string {
  t.Helper()
  r := &repositories.EmojisRepository{Db: db}
  groupID, err := r.ApplyGroup("reactions", "#fcba03", 1)
  require.NoError(t, err)
  id, err := r.Apply(groupID, keyword, "/static/"+keyword+".png", "#fcba03", 1)
  require.NoError(t, err)
  return id
}
