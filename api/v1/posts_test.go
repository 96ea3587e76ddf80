package v1_test

import (
  "encoding/json"
  "net/http"
  "net/url"
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
  "gorm.io/gorm"

  v1 "openbook.local/openbook-api/api/v1"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
)

func createPost(t *testing.T, db *gorm.DB, creator *models.User, text string, circleIDs []string) string {
  t.Helper()
  r := &repositories.PostsRepository{Db: db}
  id, err := r.Create(creator.ID, text, circleIDs)
  require.NoError(t, err)
  return id
}

func TestPostsCreate(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPut, "/", url.Values{
    "text": {"hello world"},
  }, accessToken(t, alice.ID))
  require.Equal(t, http.StatusCreated, w.Code)

  var info v1.PostInfo
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &info))
  assert.Equal(t, "hello world", info.Text)
  assert.Equal(t, alice.ID, info.Creator.ID)
  assert.Equal(t, []string{config.WORLD_CIRCLE_ID}, info.CircleIDs)
  assert.True(t, info.PublicComments)
  assert.True(t, info.PublicReactions)
}

func TestPostsCreateEmptyContent(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPut, "/", url.Values{}, accessToken(t, alice.ID))
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1004, decode(t, w).Code)
}

func TestPostsCreateMultibyteLength(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")
  token := accessToken(t, alice.ID)

  w := request(router, http.MethodPut, "/", url.Values{
    "text": {strings.Repeat("é", config.POST_MAX_LENGTH)},
  }, token)
  require.Equal(t, http.StatusCreated, w.Code)

  w = request(router, http.MethodPut, "/", url.Values{
    "text": {strings.Repeat("é", config.POST_MAX_LENGTH+1)},
  }, token)
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1004, decode(t, w).Code)
}

func TestCommentsCreateMultibyteLength(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")
  token := accessToken(t, alice.ID)

  id := createPost(t, apiContext.Db, alice, "hello", nil)

  w := request(router, http.MethodPut, "/"+id+"/comments", url.Values{
    "text": {strings.Repeat("é", config.POST_COMMENT_MAX_LENGTH)},
  }, token)
  require.Equal(t, http.StatusCreated, w.Code)

  w = request(router, http.MethodPut, "/"+id+"/comments", url.Values{
    "text": {strings.Repeat("é", config.POST_COMMENT_MAX_LENGTH+1)},
  }, token)
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1004, decode(t, w).Code)
}

func TestPostsCreateUnownedCircle(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")
  bob := createUser(t, apiContext.Db, "bob")

  circles := &repositories.CirclesRepository{Db: apiContext.Db}
  circleID, err := circles.Create(bob.ID, "Friends", "#ffffff")
  require.NoError(t, err)

  w := request(router, http.MethodPut, "/", url.Values{
    "text":      {"hello"},
    "circle_id": {circleID},
  }, accessToken(t, alice.ID))
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1003, decode(t, w).Code)
}

func TestPostsCreateUnauthorized(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)

  w := request(router, http.MethodPut, "/", url.Values{
    "text": {"hello"},
  }, "")
  require.Equal(t, http.StatusUnauthorized, w.Code)
  assert.Equal(t, 1000, decode(t, w).Code)
}

func TestPostsFeedPagination(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")
  token := accessToken(t, alice.ID)

  first := createPost(t, apiContext.Db, alice, "first", nil)
  second := createPost(t, apiContext.Db, alice, "second", nil)
  third := createPost(t, apiContext.Db, alice, "third", nil)

  w := request(router, http.MethodGet, "/?count=2", nil, token)
  require.Equal(t, http.StatusOK, w.Code)

  var page []*v1.PostInfo
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
  require.Len(t, page, 2)
  assert.Equal(t, third, page[0].ID)
  assert.Equal(t, second, page[1].ID)

  w = request(router, http.MethodGet, "/?count=2&max_id="+page[1].ID, nil, token)
  require.Equal(t, http.StatusOK, w.Code)

  page = nil
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
  require.Len(t, page, 1)
  assert.Equal(t, first, page[0].ID)
}

func TestPostsFeedCountInvalid(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodGet, "/?count=0", nil, accessToken(t, alice.ID))
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1004, decode(t, w).Code)
}

func TestPostsFeedUnauthenticated(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")

  circles := &repositories.CirclesRepository{Db: apiContext.Db}
  circleID, err := circles.Create(alice.ID, "Friends", "#ffffff")
  require.NoError(t, err)

  world := createPost(t, apiContext.Db, alice, "public", nil)
  createPost(t, apiContext.Db, alice, "private", []string{circleID})

  w := request(router, http.MethodGet, "/", nil, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1004, decode(t, w).Code)

  w = request(router, http.MethodGet, "/?username=alice", nil, "")
  require.Equal(t, http.StatusOK, w.Code)

  var page []*v1.PostInfo
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &page))
  require.Len(t, page, 1)
  assert.Equal(t, world, page[0].ID)
}

func TestPostsGet(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")
  bob := createUser(t, apiContext.Db, "bob")

  circles := &repositories.CirclesRepository{Db: apiContext.Db}
  circleID, err := circles.Create(alice.ID, "Friends", "#ffffff")
  require.NoError(t, err)

  id := createPost(t, apiContext.Db, alice, "for friends", []string{circleID})

  w := request(router, http.MethodGet, "/"+id, nil, accessToken(t, alice.ID))
  require.Equal(t, http.StatusOK, w.Code)

  var info v1.PostInfo
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &info))
  assert.Equal(t, "for friends", info.Text)

  w = request(router, http.MethodGet, "/"+id, nil, accessToken(t, bob.ID))
  require.Equal(t, http.StatusNotFound, w.Code)
  assert.Equal(t, 1002, decode(t, w).Code)

  w = request(router, http.MethodGet, "/00000000000000000001", nil, "")
  require.Equal(t, http.StatusNotFound, w.Code)
  assert.Equal(t, 1002, decode(t, w).Code)
}

func TestPostsDelete(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewPostsRouter(apiContext)
  alice := createUser(t, apiContext.Db, "alice")
  bob := createUser(t, apiContext.Db, "bob")

  id := createPost(t, apiContext.Db, alice, "ephemeral", nil)

  w := request(router, http.MethodDelete, "/"+id, nil, accessToken(t, bob.ID))
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1003, decode(t, w).Code)

  w = request(router, http.MethodDelete, "/"+id, nil, accessToken(t, alice.ID))
  require.Equal(t, http.StatusOK, w.Code)

  posts := &repositories.PostsRepository{Db: apiContext.Db}
  _, err := posts.Find(id)
  assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
