package v1

import (
  "errors"
  "net/http"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
)

type ListsHandler struct {
  ApiContext       *common.ApiContext
  Response         *api.ResponseHandler
  Repository       *repositories.ListsRepository
  EmojisRepository *repositories.EmojisRepository
}

func NewListsRouter(apiContext *common.ApiContext) http.Handler {
  h := ListsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.ListsRepository{
    Db: h.ApiContext.Db,
  }
  h.EmojisRepository = &repositories.EmojisRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Use(api.Authenticator(apiContext))
  r.Get("/", h.Listings)
  r.Put("/", h.Create)
  r.Get("/{listID}", h.Get)
  r.Post("/{listID}", h.Update)
  r.Delete("/{listID}", h.Delete)

  return r
}

func (h *ListsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  entities := h.Repository.Listings(user.ID)
  data := make([]*ListInfo, len(entities))
  for i, list := range entities {
    data[i] = &ListInfo{
      ID:      list.ID,
      Name:    list.Name,
      EmojiID: list.EmojiID,
    }
  }

  h.Response.Json(data)
}

func (h *ListsHandler) Create(
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

  if r.Form.Get("name") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "name is empty")
    return
  }

  name := r.Form.Get("name")
  emojiID := r.Form.Get("emoji_id")
  if emojiID != "" && !h.EmojisRepository.IsExists(emojiID) {
    h.Response.Error(http.StatusForbidden, 1002, "emoji not exists")
    return
  }

  if h.Repository.IsExists(user.ID, name) {
    h.Response.Error(http.StatusForbidden, 1001, "list already exists")
    return
  }

  id, err := h.Repository.Create(user.ID, name, emojiID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  list, _ := h.Repository.Find(id)

  h.Response.Created(&ListInfo{
    ID:      list.ID,
    Name:    list.Name,
    EmojiID: list.EmojiID,
  })
}

func (h *ListsHandler) Get(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  list, err := h.Repository.Find(chi.URLParam(r, "listID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "list not exists")
    return
  }

  if list.CreatorID != user.ID {
    h.Response.Error(http.StatusNotFound, 1002, "list not exists")
    return
  }

  h.Response.Json(&ListInfo{
    ID:      list.ID,
    Name:    list.Name,
    EmojiID: list.EmojiID,
  })
}

func (h *ListsHandler) Update(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  list, err := h.Repository.Find(chi.URLParam(r, "listID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "list not exists")
    return
  }

  if list.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "list not owned")
    return
  }

  r.ParseMultipartForm(1024)

  values := make(map[string]interface{})
  if r.Form.Get("name") != "" {
    values["name"] = r.Form.Get("name")
  }
  if r.Form.Get("emoji_id") != "" {
    if !h.EmojisRepository.IsExists(r.Form.Get("emoji_id")) {
      h.Response.Error(http.StatusForbidden, 1002, "emoji not exists")
      return
    }
    values["emoji_id"] = r.Form.Get("emoji_id")
  }
  if len(values) == 0 {
    h.Response.Error(http.StatusForbidden, 1004, "nothing to update")
    return
  }

  if err := h.Repository.Updates(list, values); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  list, _ = h.Repository.Find(list.ID)

  h.Response.Json(&ListInfo{
    ID:      list.ID,
    Name:    list.Name,
    EmojiID: list.EmojiID,
  })
}

func (h *ListsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  list, err := h.Repository.Find(chi.URLParam(r, "listID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "list not exists")
    return
  }

  if list.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "list not owned")
    return
  }

  if err := h.Repository.Delete(list.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(nil)
}
