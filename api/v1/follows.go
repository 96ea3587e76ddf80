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

type FollowsHandler struct {
  ApiContext      *common.ApiContext
  Response        *api.ResponseHandler
  Repository      *repositories.FollowsRepository
  UsersRepository *repositories.UsersRepository
  ListsRepository *repositories.ListsRepository
}

func NewFollowsRouter(apiContext *common.ApiContext) http.Handler {
  h := FollowsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.FollowsRepository{
    Db: h.ApiContext.Db,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }
  h.ListsRepository = &repositories.ListsRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Use(api.Authenticator(apiContext))
  r.Get("/", h.Listings)
  r.Put("/", h.Create)
  r.Delete("/{username}", h.Delete)

  return r
}

func (h *FollowsHandler) Listings(
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
  data := make([]*FollowInfo, len(entities))
  for i, follow := range entities {
    data[i] = &FollowInfo{
      ID:     follow.ID,
      ListID: follow.ListID,
    }
    if followed, err := h.UsersRepository.Find(follow.FollowedUserID); err == nil {
      data[i].FollowedUser = &UserInfo{
        ID:       followed.ID,
        Username: followed.Username,
        Name:     followed.Name,
        Avatar:   followed.Avatar,
      }
    }
  }

  h.Response.Pagenate(data, total, current, pageSize)
}

func (h *FollowsHandler) Create(
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

  followed, err := h.UsersRepository.Get(r.Form.Get("username"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "user not exists")
    return
  }

  if followed.ID == user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "can not follow yourself")
    return
  }

  if h.Repository.IsExists(user.ID, followed.ID) {
    h.Response.Error(http.StatusForbidden, 1001, "already following")
    return
  }

  listID := r.Form.Get("list_id")
  if listID != "" && !h.ListsRepository.IsOwned(listID, user.ID) {
    h.Response.Error(http.StatusForbidden, 1003, "list not owned")
    return
  }

  id, err := h.Repository.Create(user.ID, followed.ID, listID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Created(&FollowInfo{
    ID:     id,
    ListID: listID,
    FollowedUser: &UserInfo{
      ID:       followed.ID,
      Username: followed.Username,
      Name:     followed.Name,
      Avatar:   followed.Avatar,
    },
  })
}

func (h *FollowsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  followed, err := h.UsersRepository.Get(chi.URLParam(r, "username"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "user not exists")
    return
  }

  if !h.Repository.IsExists(user.ID, followed.ID) {
    h.Response.Error(http.StatusNotFound, 1002, "not following")
    return
  }

  if err := h.Repository.Delete(user.ID, followed.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(nil)
}
