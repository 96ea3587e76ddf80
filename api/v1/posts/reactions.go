package posts

import (
  "encoding/json"
  "errors"
  "fmt"
  "net/http"
  "strconv"
  "time"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
)

type ReactionsHandler struct {
  ApiContext       *common.ApiContext
  Response         *api.ResponseHandler
  Repository       *repositories.ReactionsRepository
  PostsRepository  *repositories.PostsRepository
  UsersRepository  *repositories.UsersRepository
  EmojisRepository *repositories.EmojisRepository
}

func NewReactionsRouter(apiContext *common.ApiContext) http.Handler {
  h := ReactionsHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.ReactionsRepository{
    Db:   h.ApiContext.Db,
    Nats: h.ApiContext.Nats,
  }
  h.PostsRepository = &repositories.PostsRepository{
    Db: h.ApiContext.Db,
  }
  h.UsersRepository = &repositories.UsersRepository{
    Db: h.ApiContext.Db,
  }
  h.EmojisRepository = &repositories.EmojisRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Group(func(r chi.Router) {
    r.Use(api.MaybeAuthenticator(apiContext))
    r.Get("/", h.Listings)
    r.Get("/emoji-count", h.EmojiCount)
  })
  r.Group(func(r chi.Router) {
    r.Use(api.Authenticator(apiContext))
    r.Put("/", h.Create)
    r.Delete("/{reactionID}", h.Delete)
  })

  return r
}

func (h *ReactionsHandler) Create(
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

  if r.Form.Get("emoji_id") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "emoji_id is empty")
    return
  }

  emojiID := r.Form.Get("emoji_id")
  if !h.EmojisRepository.IsExists(emojiID) {
    h.Response.Error(http.StatusForbidden, 1002, "emoji not exists")
    return
  }

  if !h.canReact(post, user) {
    h.Response.Error(http.StatusForbidden, 1003, "reactions not allowed")
    return
  }

  id, err := h.Repository.React(post.ID, user.ID, emojiID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  reaction, _ := h.Repository.Find(id)

  h.Response.Created(h.info(reaction))
}

func (h *ReactionsHandler) Listings(
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
  if r.URL.Query().Get("emoji_id") != "" {
    conditions["emoji_id"] = r.URL.Query().Get("emoji_id")
  }
  if r.URL.Query().Get("max_id") != "" {
    conditions["max_id"] = r.URL.Query().Get("max_id")
  }

  entities := h.Repository.Listings(conditions, count)
  data := make([]*ReactionInfo, len(entities))
  for i, reaction := range entities {
    data[i] = h.info(reaction)
  }

  h.Response.Json(data)
}

func (h *ReactionsHandler) EmojiCount(
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

  var counts []*repositories.EmojiCount
  redisKey := fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, post.ID)
  val, _ := h.ApiContext.Rdb.Get(h.ApiContext.Ctx, redisKey).Result()
  if val != "" {
    json.Unmarshal([]byte(val), &counts)
  } else {
    counts = h.Repository.EmojiCounts(post.ID)
    if buf, err := json.Marshal(counts); err == nil {
      h.ApiContext.Rdb.SetEX(h.ApiContext.Ctx, redisKey, string(buf), time.Minute*15)
    }
  }

  data := make([]*EmojiCountInfo, len(counts))
  for i, item := range counts {
    data[i] = &EmojiCountInfo{
      Count: item.Count,
    }
    if emoji, err := h.EmojisRepository.Find(item.EmojiID); err == nil {
      data[i].Emoji = &EmojiInfo{
        ID:      emoji.ID,
        Keyword: emoji.Keyword,
        Image:   emoji.Image,
        Color:   emoji.Color,
      }
    }
  }

  h.Response.Json(data)
}

func (h *ReactionsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  user := api.CurrentUser(r)

  reaction, err := h.Repository.Find(chi.URLParam(r, "reactionID"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1002, "reaction not exists")
    return
  }

  post, err := h.PostsRepository.Find(reaction.PostID)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  if reaction.ReactorID != user.ID && post.CreatorID != user.ID {
    h.Response.Error(http.StatusForbidden, 1003, "reaction not owned")
    return
  }

  if err := h.Repository.Delete(reaction.ID); err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.ApiContext.Rdb.Del(
    h.ApiContext.Ctx,
    fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, post.ID),
  )

  h.Response.Json(nil)
}

func (h *ReactionsHandler) canReact(post *models.Post, user *models.User) bool {
  if post.CreatorID == user.ID {
    return true
  }
  if !post.PublicReactions {
    return h.PostsRepository.IsEncircled(post.ID, user.ID)
  }
  return h.PostsRepository.IsVisible(post, user.ID)
}

func (h *ReactionsHandler) info(reaction *models.PostReaction) *ReactionInfo {
  data := &ReactionInfo{
    ID:        reaction.ID,
    CreatedAt: reaction.CreatedAt.Unix(),
  }
  if reactor, err := h.UsersRepository.Find(reaction.ReactorID); err == nil {
    data.Reactor = &UserInfo{
      ID:       reactor.ID,
      Username: reactor.Username,
      Name:     reactor.Name,
      Avatar:   reactor.Avatar,
    }
  }
  if emoji, err := h.EmojisRepository.Find(reaction.EmojiID); err == nil {
    data.Emoji = &EmojiInfo{
      ID:      emoji.ID,
      Keyword: emoji.Keyword,
      Image:   emoji.Image,
      Color:   emoji.Color,
    }
  }
  return data
}
