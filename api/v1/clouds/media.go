package clouds

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "openbook.local/openbook-api/api/v1/clouds/media"
  "openbook.local/openbook-api/common"
)

func NewMediaRouter(apiContext *common.ApiContext) http.Handler {
  r := chi.NewRouter()
  r.Mount("/images", media.NewImagesRouter(apiContext))
  r.Mount("/videos", media.NewVideosRouter(apiContext))
  return r
}
