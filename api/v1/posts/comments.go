package posts

import (
  "errors"
  "net/http"
  "strconv"
  "unicode/utf8"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
)

type CommentsHandler struct {
  ApiContext      *common.ApiContext
  Response        *api.ResponseHandler
  Repository      *repositories.CommentsRepository
  PostsRepository *repositories.PostsRepository
  UsersRepository *repositories.UsersRepository
}

func NewCommentsRouter(apiContext *common.ApiContext) http.Handler {
  h := CommentsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.CommentsRepository{
    Db: h.ApiContext.Db,
  }
  h.PostsRepository = &repositories.PostsRepository{
    Db: h.ApiContext.Db,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Group(func(r chi.Router) {
    r.Use(api.MaybeAuthenticator(apiContext))
    r.Get("/", h.Listings)
  })
  r.Group(func(r chi.Router) {
    r.Use(api.Authenticator(apiContext))
    r.Put("/", h.Create)
    r.Delete("/{commentID}", h.Delete)
  })

  return r
}

func (h *CommentsHandler) Create(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  post, err := h.PostsRepository.Find(chi.URLParam(r, "postID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "post not exists")
    return
  }

  r.ParseMultipartForm(1024)

  if r.Form.Get("text") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "text is empty")
    return
  }

  text := r.Form.Get("text")
  if utf8.RuneCountInString(text) > config.POST_COMMENT_MAX_LENGTH {
    h.Response.Error(http.StatusForbidden, 1004, "text is too long")
    return
  }

  if !h.canComment(post, user) {
    h.Response.Error(http.StatusForbidden, 1003, "comments not allowed")
    return
  }

  id, err := h.Repository.Create(post.ID, user.ID, text)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  comment, _ := h.Repository.Find(id)

  h.Response.Created(h.info(comment))
}

func (h *CommentsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  post, err := h.PostsRepository.Find(chi.URLParam(r, "postID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "post not exists")
    return
  }

  var viewerID string
  if user != nil {
    viewerID = user.ID
  }
  if !h.PostsRepository.IsVisible(post, viewerID) {
    h.Response.Error(http.StatusNotFound, 1002, "post not exists")
    return
  }

  var count int
  if !r.URL.Query().Has("count") {
    count = 10
  } else {
    count, _ = strconv.Atoi(r.URL.Query().Get("count"))
  }
  if count < 1 || count > 20 {
    h.Response.Error(http.StatusForbidden, 1004, "count not valid")
    return
  }

  conditions := map[string]interface{}{
    "post_id": post.ID,
  }
  if r.URL.Query().Get("max_id") != "" {
    conditions["max_id"] = r.URL.Query().Get("max_id")
  }

  entities := h.Repository.Listings(conditions, count)
  data := make([]*CommentInfo, len(entities))
  for i, comment := range entities {
    data[i] = h.info(comment)
  }

  h.Response.Json(data)
}

func (h *CommentsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  comment, err := h.Repository.Find(chi.URLParam(r, "commentID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "comment not exists")
    return
  }

  post, err := h.PostsRepository.Find(comment.PostID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  if comment.CommenterID != user.ID && post.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "comment not owned")
    return
  }

  if err := h.Repository.Delete(comment.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(nil)
}

func (h *CommentsHandler) canComment(post *models.Post, user *models.User) bool {
  if post.CreatorID == user.ID {
    return true
  }
  if !post.PublicComments {
    return h.PostsRepository.IsEncircled(post.ID, user.ID)
  }
  return h.PostsRepository.IsVisible(post, user.ID)
}

func (h *CommentsHandler) info(comment *models.PostComment) *CommentInfo {
  data := &CommentInfo{
    ID:        comment.ID,
    Text:      comment.Text,
    CreatedAt: comment.CreatedAt.Unix(),
  }
  if commenter, err := h.UsersRepository.Find(comment.CommenterID); err == nil {
    data.Commenter = &UserInfo{
      ID:       commenter.ID,
      Username: commenter.Username,
      Name:     commenter.Name,
      Avatar:   commenter.Avatar,
    }
  }
  return data
}
