package v1_test

import (
  "encoding/json"
  "net/http"
  "net/url"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"

  v1 "openbook.local/openbook-api/api/v1"
  jwtRepositories "openbook.local/openbook-api/repositories/jwt"
)

func TestAuthRegister(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)

  w := request(router, http.MethodPost, "/register", url.Values{
    "username": {"alice"},
    "email":    {"alice@example.com"},
    "password": {"secret123"},
    "name":     {"Alice"},
  }, "")
  require.Equal(t, http.StatusCreated, w.Code)

  env := decode(t, w)
  assert.True(t, env.Success)

  var info v1.RegisterInfo
  require.NoError(t, json.Unmarshal(env.Data, &info))
  assert.Equal(t, "alice", info.User.Username)
  assert.Equal(t, "Alice", info.User.Name)
  assert.NotEmpty(t, info.Token.AccessToken)
  assert.NotEmpty(t, info.Token.RefreshToken)

  tokenRepository := &jwtRepositories.TokenRepository{}
  uid, err := tokenRepository.Uid(info.Token.AccessToken)
  require.NoError(t, err)
  assert.Equal(t, info.User.ID, uid)
}

func TestAuthRegisterDuplicateUsername(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPost, "/register", url.Values{
    "username": {"alice"},
    "email":    {"other@example.com"},
    "password": {"secret123"},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1001, decode(t, w).Code)
}

func TestAuthRegisterMissingPassword(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)

  w := request(router, http.MethodPost, "/register", url.Values{
    "username": {"alice"},
    "email":    {"alice@example.com"},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1004, decode(t, w).Code)
}

func TestAuthLogin(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  user := createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPost, "/login", url.Values{
    "username": {"alice"},
    "password": {"secret123"},
  }, "")
  require.Equal(t, http.StatusOK, w.Code)

  var token v1.Token
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &token))
  require.NotEmpty(t, token.AccessToken)

  tokenRepository := &jwtRepositories.TokenRepository{}
  uid, err := tokenRepository.Uid(token.AccessToken)
  require.NoError(t, err)
  assert.Equal(t, user.ID, uid)
}

func TestAuthLoginWrongPassword(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPost, "/login", url.Values{
    "username": {"alice"},
    "password": {"nope12345"},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1000, decode(t, w).Code)
}

func TestAuthLoginUnknownUsername(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)

  w := request(router, http.MethodPost, "/login", url.Values{
    "username": {"nobody"},
    "password": {"secret123"},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1000, decode(t, w).Code)
}

func TestAuthRefresh(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  user := createUser(t, apiContext.Db, "alice")

  tokenRepository := &jwtRepositories.TokenRepository{}
  refreshToken, err := tokenRepository.RefreshToken(user.ID)
  require.NoError(t, err)

  w := request(router, http.MethodPost, "/refresh", url.Values{
    "refresh_token": {refreshToken},
  }, "")
  require.Equal(t, http.StatusOK, w.Code)

  var token v1.Token
  require.NoError(t, json.Unmarshal(decode(t, w).Data, &token))
  uid, err := tokenRepository.Uid(token.AccessToken)
  require.NoError(t, err)
  assert.Equal(t, user.ID, uid)
}

func TestAuthRefreshRejectsAccessToken(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  user := createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPost, "/refresh", url.Values{
    "refresh_token": {accessToken(t, user.ID)},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1000, decode(t, w).Code)
}

func TestAuthUsernameCheck(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPost, "/username-check", url.Values{
    "username": {"alice"},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1001, decode(t, w).Code)

  w = request(router, http.MethodPost, "/username-check", url.Values{
    "username": {"bob"},
  }, "")
  require.Equal(t, http.StatusOK, w.Code)
  assert.True(t, decode(t, w).Success)
}

func TestAuthEmailCheck(t *testing.T) {
  apiContext := testApiContext(t)
  router := v1.NewAuthRouter(apiContext)
  createUser(t, apiContext.Db, "alice")

  w := request(router, http.MethodPost, "/email-check", url.Values{
    "email": {"alice@example.com"},
  }, "")
  require.Equal(t, http.StatusForbidden, w.Code)
  assert.Equal(t, 1001, decode(t, w).Code)

  w = request(router, http.MethodPost, "/email-check", url.Values{
    "email": {"bob@example.com"},
  }, "")
  require.Equal(t, http.StatusOK, w.Code)
  assert.True(t, decode(t, w).Success)
}
