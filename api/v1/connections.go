package v1

import (
  "errors"
  "net/http"
  "strconv"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
)

type ConnectionsHandler struct {
  ApiContext        *common.ApiContext
  Response          *api.ResponseHandler
  Repository        *repositories.ConnectionsRepository
  UsersRepository   *repositories.UsersRepository
  CirclesRepository *repositories.CirclesRepository
}

func NewConnectionsRouter(apiContext *common.ApiContext) http.Handler {
  h := ConnectionsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.ConnectionsRepository{
    Db: h.ApiContext.Db,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }
  h.CirclesRepository = &repositories.CirclesRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Use(api.Authenticator(apiContext))
  r.Get("/", h.Listings)
  r.Put("/", h.Create)
  r.Delete("/{username}", h.Delete)

  return r
}

func (h *ConnectionsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  var current int
  if !r.URL.Query().Has("current") {
    current = 1
  } else {
    current, _ = strconv.Atoi(r.URL.Query().Get("current"))
  }
  if current < 1 {
    h.Response.Error(http.StatusForbidden, 1004, "current not valid")
    return
  }

  var pageSize int
  if !r.URL.Query().Has("page_size") {
    pageSize = 50
  } else {
    pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
  }
  if pageSize < 1 || pageSize > 100 {
    h.Response.Error(http.StatusForbidden, 1004, "page size not valid")
    return
  }

  total := h.Repository.Count(user.ID)
  entities := h.Repository.Listings(user.ID, current, pageSize)
  data := make([]*ConnectionInfo, len(entities))
  for i, connection := range entities {
    data[i] = &ConnectionInfo{
      ID:       connection.ID,
      CircleID: connection.CircleID,
    }
    if target, err := h.UsersRepository.Find(connection.TargetUserID); err == nil {
      data[i].TargetUser = &UserInfo{
        ID:       target.ID,
        Username: target.Username,
        Name:     target.Name,
        Avatar:   target.Avatar,
      }
    }
  }

  h.Response.Pagenate(data, total, current, pageSize)
}

func (h *ConnectionsHandler) Create(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  r.ParseMultipartForm(1024)

  if r.Form.Get("username") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "username is empty")
    return
  }

  if r.Form.Get("circle_id") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "circle_id is empty")
    return
  }

  target, err := h.UsersRepository.Get(r.Form.Get("username"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "user not exists")
    return
  }

  if target.ID == user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "can not connect with yourself")
    return
  }

  if h.Repository.IsExists(user.ID, target.ID) {
    h.Response.Error(http.StatusForbidden, 1001, "already connected")
    return
  }

  circleID := r.Form.Get("circle_id")
  if !h.CirclesRepository.IsOwned(circleID, user.ID) {
    h.Response.Error(http.StatusForbidden, 1003, "circle not owned")
    return
  }

  id, err := h.Repository.Create(user.ID, target.ID, circleID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Created(&ConnectionInfo{
    ID:       id,
    CircleID: circleID,
    TargetUser: &UserInfo{
      ID:       target.ID,
      Username: target.Username,
      Name:     target.Name,
      Avatar:   target.Avatar,
    },
  })
}

func (h *ConnectionsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  target, err := h.UsersRepository.Get(chi.URLParam(r, "username"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "user not exists")
    return
  }

  if !h.Repository.IsExists(user.ID, target.ID) {
    h.Response.Error(http.StatusNotFound, 1002, "not connected")
    return
  }

  if err := h.Repository.Delete(user.ID, target.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(nil)
}
