package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
)

type EmojisHandler struct {
  ApiContext *common.ApiContext
  Response   *api.ResponseHandler
  Repository *repositories.EmojisRepository
}

func NewEmojisRouter(apiContext *common.ApiContext) http.Handler {
  h := EmojisHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.EmojisRepository{
    Db: h.ApiContext.Db,
  }

  r := chi.NewRouter()
  r.Get("/groups", h.Groups)

  return r
}

func (h *EmojisHandler) Groups(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  groups := h.Repository.Groups()
  data := make([]*EmojiGroupInfo, len(groups))
  for i, group := range groups {
    data[i] = &EmojiGroupInfo{
      ID:      group.ID,
      Keyword: group.Keyword,
      Color:   group.Color,
      Emojis:  []*EmojiInfo{},
    }
    for _, emoji := range h.Repository.Listings(group.ID) {
      data[i].Emojis = append(data[i].Emojis, &EmojiInfo{
        ID:      emoji.ID,
        Keyword: emoji.Keyword,
        Image:   emoji.Image,
        Color:   emoji.Color,
      })
    }
  }

  h.Response.Json(data)
}
