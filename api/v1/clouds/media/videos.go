package media

import (
  "errors"
  "fmt"
  "log"
  "net/http"
  "os"
  "time"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api"
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  repositories "openbook.local/openbook-api/repositories/media"
)

type VideosHandler struct {
  ApiContext *common.ApiContext
  Response   *api.ResponseHandler
  Repository *repositories.VideosRepository
}

func NewVideosRouter(apiContext *common.ApiContext) http.Handler {
  h := VideosHandler{
    ApiContext: apiContext,
  }
  h.Repository = &repositories.VideosRepository{
    Db:  h.ApiContext.Db,
    Ctx: h.ApiContext.Ctx,
  }

  r := chi.NewRouter()
  r.Post("/notify", h.Notify)

  return r
}

func (h *VideosHandler) Notify(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseForm()

  if r.Form.Get("sourceId") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "sourceId is empty")
    return
  }

  if r.Form.Get("url") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "url is empty")
    return
  }

  id := r.Form.Get("sourceId")
  cloudUrl := r.Form.Get("url")
  video, err := h.Repository.Find(id)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusForbidden, 1004, "video not exists")
    return
  }

  mutex := common.NewMutex(
    h.ApiContext.Rdb,
    h.ApiContext.Ctx,
    fmt.Sprintf(config.LOCKS_TASKS_CLOUDS_MEDIA_VIDEOS_NOTIFY, video.ID),
  )
  if !mutex.Lock(5 * time.Second) {
    h.Response.Error(http.StatusForbidden, 1004, "waiting for the lock release")
    return
  }
  defer mutex.Unlock()

  h.Repository.Updates(video, map[string]interface{}{
    "cloud_url": cloudUrl,
    "is_synced": true,
  })

  localfile := h.Repository.Path(video)
  os.Remove(localfile)

  h.ApiContext.Rdb.ZRem(h.ApiContext.Ctx, config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_VIDEOS, video.ID)

  log.Println("success removed local file", localfile)

  h.Response.Json(nil)
}
