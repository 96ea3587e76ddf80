package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "openbook.local/openbook-api/api/v1/clouds"
  "openbook.local/openbook-api/common"
)

func NewCloudsRouter(apiContext *common.ApiContext) http.Handler {
  r := chi.NewRouter()
  r.Mount("/media", clouds.NewMediaRouter(apiContext))
  return r
}
