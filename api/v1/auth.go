package v1

import (
  "errors"
  "net/http"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
  jwtRepositories "openbook.local/openbook-api/repositories/jwt"
  mediaRepositories "openbook.local/openbook-api/repositories/media"
)

type AuthHandler struct {
  ApiContext       *common.ApiContext
  Response         *api.ResponseHandler
  UsersRepository  *repositories.UsersRepository
  ImagesRepository *mediaRepositories.ImagesRepository
  TokenRepository  *jwtRepositories.TokenRepository
}

func NewAuthRouter(apiContext *common.ApiContext) http.Handler {
  h := AuthHandler{
    ApiContext: apiContext,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db:   h.ApiContext.Db,
    Nats: h.ApiContext.Nats,
  }
  h.ImagesRepository = &mediaRepositories.ImagesRepository{
    Db:  h.ApiContext.Db,
    Ctx: h.ApiContext.Ctx,
  }
  h.TokenRepository = &jwtRepositories.TokenRepository{}

  r := chi.NewRouter()
  r.Post("/register", h.Register)
  r.Post("/login", h.Login)
  r.Post("/refresh", h.Refresh)
  r.Post("/username-check", h.UsernameCheck)
  r.Post("/email-check", h.EmailCheck)

  return r
}

func (h *AuthHandler) Register(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseMultipartForm(32 << 20)

  if r.Form.Get("username") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "username is empty")
    return
  }

  if r.Form.Get("email") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "email is empty")
    return
  }

  if r.Form.Get("password") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "password is empty")
    return
  }

  username := r.Form.Get("username")
  email := r.Form.Get("email")
  password := r.Form.Get("password")
  name := r.Form.Get("name")

  if h.UsersRepository.IsUsernameExists(username) {
    h.Response.Error(http.StatusForbidden, 1001, "username is taken")
    return
  }

  if h.UsersRepository.IsEmailExists(email) {
    h.Response.Error(http.StatusForbidden, 1001, "email is taken")
    return
  }

  var avatar string
  if src, _, err := r.FormFile("avatar"); err == nil {
    defer src.Close()
    avatar, err = h.ImagesRepository.Persist(src)
    if err != nil {
      h.Response.Error(http.StatusForbidden, 1004, "avatar is invalid")
      return
    }
  }

  id, err := h.UsersRepository.Create(
    username,
    email,
    password,
    name,
    r.Form.Get("birthdate"),
    avatar,
  )
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  token, err := h.token(id)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  user, _ := h.UsersRepository.Find(id)

  h.Response.Created(&RegisterInfo{
    User: &UserInfo{
      ID:       user.ID,
      Username: user.Username,
      Name:     user.Name,
      Avatar:   user.Avatar,
    },
    Token: token,
  })
}

func (h *AuthHandler) Login(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseMultipartForm(1024)

  if r.Form.Get("username") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "username is empty")
    return
  }

  if r.Form.Get("password") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "password is empty")
    return
  }

  username := r.Form.Get("username")
  password := r.Form.Get("password")

  user, err := h.UsersRepository.Get(username)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusForbidden, 1000, "username not exists")
    return
  }
  if !common.VerifyPassword(password, user.Salt, user.Password) {
    h.Response.Error(http.StatusForbidden, 1000, "password is wrong")
    return
  }

  token, err := h.token(user.ID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(token)
}

func (h *AuthHandler) Refresh(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseMultipartForm(1024)

  if r.Form.Get("refresh_token") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "refresh_token is empty")
    return
  }

  accessToken, err := h.TokenRepository.Refresh(r.Form.Get("refresh_token"))
  if err != nil {
    h.Response.Error(http.StatusForbidden, 1000, "refresh_token is invalid")
    return
  }

  h.Response.Json(&Token{
    AccessToken:  accessToken,
    RefreshToken: r.Form.Get("refresh_token"),
  })
}

func (h *AuthHandler) UsernameCheck(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseMultipartForm(1024)

  if r.Form.Get("username") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "username is empty")
    return
  }

  if h.UsersRepository.IsUsernameExists(r.Form.Get("username")) {
    h.Response.Error(http.StatusForbidden, 1001, "username is taken")
    return
  }

  h.Response.Json(nil)
}

func (h *AuthHandler) EmailCheck(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseMultipartForm(1024)

  if r.Form.Get("email") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "email is empty")
    return
  }

  if h.UsersRepository.IsEmailExists(r.Form.Get("email")) {
    h.Response.Error(http.StatusForbidden, 1001, "email is taken")
    return
  }

  h.Response.Json(nil)
}

func (h *AuthHandler) token(uid string) (token *Token, err error) {
  accessToken, err := h.TokenRepository.AccessToken(uid)
  if err != nil {
    return
  }
  refreshToken, err := h.TokenRepository.RefreshToken(uid)
  if err != nil {
    return
  }
  token = &Token{
    AccessToken:  accessToken,
    RefreshToken: refreshToken,
  }
  return
}
