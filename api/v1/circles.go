package v1

import (
  "errors"
  "net/http"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

type CirclesHandler struct {
  ApiContext *common.ApiContext
  Response   *api.ResponseHandler
  Repository *repositories.CirclesRepository
}

func NewCirclesRouter(apiContext *common.ApiContext) http.Handler {
  h := CirclesHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.CirclesRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Use(api.Authenticator(apiContext))
  r.Get("/", h.Listings)
  r.Put("/", h.Create)
  r.Get("/{circleID}", h.Get)
  r.Post("/{circleID}", h.Update)
  r.Delete("/{circleID}", h.Delete)

  return r
}

func (h *CirclesHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  entities := h.Repository.Listings(user.ID)
  data := make([]*CircleInfo, len(entities))
  for i, circle := range entities {
    data[i] = &CircleInfo{
      ID:        circle.ID,
      Name:      circle.Name,
      Color:     circle.Color,
      CreatorID: circle.CreatorID,
    }
  }

  h.Response.Json(data)
}

func (h *CirclesHandler) Create(
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
  color := r.Form.Get("color")
  if color == "" {
    color = "#ffffff"
  }

  if h.Repository.IsExists(user.ID, name) {
    h.Response.Error(http.StatusForbidden, 1001, "circle already exists")
    return
  }

  id, err := h.Repository.Create(user.ID, name, color)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  circle, _ := h.Repository.Find(id)

  h.Response.Created(&CircleInfo{
    ID:        circle.ID,
    Name:      circle.Name,
    Color:     circle.Color,
    CreatorID: circle.CreatorID,
  })
}

func (h *CirclesHandler) Get(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  circle, err := h.Repository.Find(chi.URLParam(r, "circleID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "circle not exists")
    return
  }

  if circle.ID != config.WORLD_CIRCLE_ID && circle.CreatorID != user.ID {
    h.Response.Error(http.StatusNotFound, 1002, "circle not exists")
    return
  }

  h.Response.Json(&CircleInfo{
    ID:        circle.ID,
    Name:      circle.Name,
    Color:     circle.Color,
    CreatorID: circle.CreatorID,
  })
}

func (h *CirclesHandler) Update(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  circle, err := h.Repository.Find(chi.URLParam(r, "circleID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "circle not exists")
    return
  }

  if circle.ID == config.WORLD_CIRCLE_ID {
    h.Response.Error(http.StatusForbidden, 1003, "world circle can not be changed")
    return
  }

  if circle.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "circle not owned")
    return
  }

  r.ParseMultipartForm(1024)

  values := make(map[string]interface{})
  if r.Form.Get("name") != "" {
    values["name"] = r.Form.Get("name")
  }
  if r.Form.Get("color") != "" {
    values["color"] = r.Form.Get("color")
  }
  if len(values) == 0 {
    h.Response.Error(http.StatusForbidden, 1004, "nothing to update")
    return
  }

  if err := h.Repository.Updates(circle, values); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  circle, _ = h.Repository.Find(circle.ID)

  h.Response.Json(&CircleInfo{
    ID:        circle.ID,
    Name:      circle.Name,
    Color:     circle.Color,
    CreatorID: circle.CreatorID,
  })
}

func (h *CirclesHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  circle, err := h.Repository.Find(chi.URLParam(r, "circleID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "circle not exists")
    return
  }

  if circle.ID == config.WORLD_CIRCLE_ID {
    h.Response.Error(http.StatusForbidden, 1003, "world circle can not be deleted")
    return
  }

  if circle.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "circle not owned")
    return
  }

  if err := h.Repository.Delete(circle.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(nil)
}
