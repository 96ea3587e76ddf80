package v1

import (
  "encoding/json"
  "errors"
  "net/http"
  "strconv"
  "strings"
  "time"
  "unicode/utf8"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/api/v1/posts"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
  mediaRepositories "openbook.local/openbook-api/repositories/media"
)

type PostsHandler struct {
  ApiContext          *common.ApiContext
  Response            *api.ResponseHandler
  Repository          *repositories.PostsRepository
  UsersRepository     *repositories.UsersRepository
  CirclesRepository   *repositories.CirclesRepository
  CommentsRepository  *repositories.CommentsRepository
  ReactionsRepository *repositories.ReactionsRepository
  ImagesRepository    *mediaRepositories.ImagesRepository
  VideosRepository    *mediaRepositories.VideosRepository
}

func NewPostsRouter(apiContext *common.ApiContext) http.Handler {
  h := PostsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.PostsRepository{
    Db:   h.ApiContext.Db,
    Nats: h.ApiContext.Nats,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }
  h.CirclesRepository = &repositories.CirclesRepository{
    Db: h.ApiContext.Db,
  }
  h.CommentsRepository = &repositories.CommentsRepository{
    Db: h.ApiContext.Db,
  }
  h.ReactionsRepository = &repositories.ReactionsRepository{
    Db: h.ApiContext.Db,
  }
  h.ImagesRepository = &mediaRepositories.ImagesRepository{
    Db:  h.ApiContext.Db,
    Ctx: h.ApiContext.Ctx,
  }
  h.VideosRepository = &mediaRepositories.VideosRepository{
    Db:   h.ApiContext.Db,
    Ctx:  h.ApiContext.Ctx,
    Nats: h.ApiContext.Nats,
  }

  r := chi.NewRouter()
  r.Group(func(r chi.Router) {
    r.Use(api.MaybeAuthenticator(apiContext))
    r.Get("/", h.Feed)
    r.Get("/trending", h.Trending)
    r.Get("/{postID}", h.Get)
  })
  r.Group(func(r chi.Router) {
    r.Use(api.Authenticator(apiContext))
    r.Put("/", h.Create)
    r.Delete("/{postID}", h.Delete)
  })
  r.Mount("/{postID}/comments", posts.NewCommentsRouter(apiContext))
  r.Mount("/{postID}/reactions", posts.NewReactionsRouter(apiContext))

  return r
}

func (h *PostsHandler) Create(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  r.ParseMultipartForm(512 << 20)

  text := r.Form.Get("text")
  if utf8.RuneCountInString(text) > config.POST_MAX_LENGTH {
    h.Response.Error(http.StatusForbidden, 1004, "text is too long")
    return
  }

  image, _, imageErr := r.FormFile("image")
  video, _, videoErr := r.FormFile("video")

  if imageErr == nil && videoErr == nil {
    h.Response.Error(http.StatusForbidden, 1004, "image and video can not be used together")
    return
  }

  if text == "" && imageErr != nil && videoErr != nil {
    h.Response.Error(http.StatusForbidden, 1004, "post content is empty")
    return
  }

  var circleIDs []string
  if r.Form.Get("circle_id") != "" {
    for _, circleID := range strings.Split(r.Form.Get("circle_id"), ",") {
      circleID = strings.TrimSpace(circleID)
      if circleID == config.WORLD_CIRCLE_ID {
        circleIDs = append(circleIDs, circleID)
        continue
      }
      if !h.CirclesRepository.IsOwned(circleID, user.ID) {
        h.Response.Error(http.StatusForbidden, 1003, "circle not owned")
        return
      }
      circleIDs = append(circleIDs, circleID)
    }
  }

  id, err := h.Repository.Create(user.ID, text, circleIDs)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  if imageErr == nil {
    defer image.Close()
    if _, err := h.ImagesRepository.Save(id, image); err != nil {
      h.Repository.Delete(id)
      h.Response.Error(http.StatusForbidden, 1004, "image is invalid")
      return
    }
  }

  if videoErr == nil {
    defer video.Close()
    if _, err := h.VideosRepository.Save(id, video); err != nil {
      h.Repository.Delete(id)
      h.Response.Error(http.StatusForbidden, 1004, "video is invalid")
      return
    }
  }

  post, err := h.Repository.Find(id)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Created(h.info(post))
}

func (h *PostsHandler) Feed(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

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

  conditions := make(map[string]interface{})

  if user != nil {
    conditions["viewer_id"] = user.ID
  }

  if r.URL.Query().Get("max_id") != "" {
    conditions["max_id"] = r.URL.Query().Get("max_id")
  }

  if r.URL.Query().Get("username") != "" {
    conditions["username"] = r.URL.Query().Get("username")
  } else if r.URL.Query().Get("circle_id") != "" {
    conditions["circle_ids"] = strings.Split(r.URL.Query().Get("circle_id"), ",")
  } else if r.URL.Query().Get("list_id") != "" {
    conditions["list_ids"] = strings.Split(r.URL.Query().Get("list_id"), ",")
  }

  if user == nil {
    if _, ok := conditions["username"]; !ok {
      h.Response.Error(http.StatusForbidden, 1004, "username is empty")
      return
    }
    delete(conditions, "circle_ids")
    delete(conditions, "list_ids")
  }

  entities := h.Repository.Timeline(conditions, count)
  data := make([]*PostInfo, len(entities))
  for i, post := range entities {
    data[i] = h.info(post)
  }

  h.Response.Json(data)
}

func (h *PostsHandler) Trending(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
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

  var entities []*models.Post

  var ids []string
  val, _ := h.ApiContext.Rdb.Get(h.ApiContext.Ctx, config.REDIS_KEY_POSTS_TRENDING).Result()
  if val != "" {
    json.Unmarshal([]byte(val), &ids)
    for _, id := range ids {
      if len(entities) >= count {
        break
      }
      if post, err := h.Repository.Find(id); err == nil {
        entities = append(entities, post)
      }
    }
  } else {
    entities = h.Repository.Trending(count)
    ids = make([]string, len(entities))
    for i, post := range entities {
      ids[i] = post.ID
    }
    if buf, err := json.Marshal(ids); err == nil {
      h.ApiContext.Rdb.SetEX(h.ApiContext.Ctx, config.REDIS_KEY_POSTS_TRENDING, string(buf), time.Minute*5)
    }
  }

  data := make([]*PostInfo, len(entities))
  for i, post := range entities {
    data[i] = h.info(post)
  }

  h.Response.Json(data)
}

func (h *PostsHandler) Get(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  post, err := h.Repository.Find(chi.URLParam(r, "postID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "post not exists")
    return
  }

  var viewerID string
  if user != nil {
    viewerID = user.ID
  }
  if !h.Repository.IsVisible(post, viewerID) {
    h.Response.Error(http.StatusNotFound, 1002, "post not exists")
    return
  }

  h.Response.Json(h.info(post))
}

func (h *PostsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  post, err := h.Repository.Find(chi.URLParam(r, "postID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "post not exists")
    return
  }

  if post.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "post not owned")
    return
  }

  if err := h.Repository.Delete(post.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(nil)
}

func (h *PostsHandler) info(post *models.Post) *PostInfo {
  data := &PostInfo{
    ID:              post.ID,
    Text:            post.Text,
    CircleIDs:       h.Repository.CircleIDs(post.ID),
    PublicComments:  post.PublicComments,
    PublicReactions: post.PublicReactions,
    CommentsCount:   h.CommentsRepository.Count(post.ID),
    ReactionsCount:  h.ReactionsRepository.Count(post.ID),
    CreatedAt:       post.CreatedAt.Unix(),
  }
  if creator, err := h.UsersRepository.Find(post.CreatorID); err == nil {
    data.Creator = &UserInfo{
      ID:       creator.ID,
      Username: creator.Username,
      Name:     creator.Name,
      Avatar:   creator.Avatar,
    }
  }
  if image, err := h.ImagesRepository.GetByPost(post.ID); err == nil {
    data.Image = &ImageInfo{
      Url:    h.ImagesRepository.Url(image),
      Width:  image.Width,
      Height: image.Height,
    }
  }
  if video, err := h.VideosRepository.GetByPost(post.ID); err == nil {
    data.Video = &VideoInfo{
      Url:    h.VideosRepository.Url(video),
      Status: video.Status,
    }
    for _, format := range h.VideosRepository.Formats(video.ID) {
      item := &FormatInfo{
        Format:   format.Format,
        Progress: format.Progress,
      }
      if format.Status == 3 {
        item.Url = h.VideosRepository.FormatUrl(format, video.Node)
      }
      data.Video.Formats = append(data.Video.Formats, item)
    }
  }
  return data
}
