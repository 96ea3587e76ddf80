package v1_test

import (
  "context"
  "encoding/json"
  "io"
  "net/http"
  "net/http/httptest"
  "net/url"
  "os"
  "strings"
  "testing"

  "github.com/stretchr/testify/require"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
  jwtRepositories "openbook.local/openbook-api/repositories/jwt"
)

func TestMain(m *testing.M) {
  os.Setenv("JWT_SECRET", "handler-test-secret")
  os.Exit(m.Run())
}

func testApiContext(t *testing.T) *common.ApiContext {
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
  return &common.ApiContext{
    Db:  db,
    Ctx: context.Background(),
  }
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

func accessToken(t *testing.T, uid string) string {
  t.Helper()
  r := &jwtRepositories.TokenRepository{}
  token, err := r.AccessToken(uid)
  require.NoError(t, err)
  return token
}

func request(
  handler http.Handler,
  method string,
  target string,
  form url.Values,
  token string,
) *httptest.ResponseRecorder {
  var body io.Reader
  if form != nil {
    body = strings.NewReader(form.Encode())
  }
  req := httptest.NewRequest(method, target, body)
  if form != nil {
    req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
  }
  if token != "" {
    req.Header.Set("Authorization", "Bearer "+token)
  }
  w := httptest.NewRecorder()
  handler.ServeHTTP(w, req)
  return w
}

type envelope struct {
  Success bool            `json:"success"`
  Code    int             `json:"code"`
  Message string          `json:"message"`
  Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) *envelope {
  t.Helper()
  var env envelope
  require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
  return &env
}
