package media

import (
  "encoding/json"
  "fmt"
  "time"

  "github.com/nats-io/nats.go"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

type Videos struct {
  NatsContext *common.NatsContext
  Repository  *repositories.TasksRepository
}

func NewVideos(natsContext *common.NatsContext) *Videos {
  h := &Videos{
    NatsContext: natsContext,
  }
  h.Repository = &repositories.TasksRepository{
    Db: h.NatsContext.Db,
  }
  return h
}

func (h *Videos) Subscribe() error {
  h.NatsContext.Conn.Subscribe(config.NATS_MEDIA_VIDEOS_CREATE, h.Apply)
  return nil
}

func (h *Videos) Apply(m *nats.Msg) {
  var payload *VideosCreatePayload
  json.Unmarshal(m.Data, &payload)

  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    fmt.Sprintf(config.LOCKS_TASKS_MEDIA_VIDEOS_APPLY, payload.ID),
  )
  if !mutex.Lock(3 * time.Second) {
    return
  }
  defer mutex.Unlock()

  name := fmt.Sprintf("%v@media.videos.convert", payload.ID)
  action := config.TASK_ACTION_MEDIA_VIDEOS_CONVERT
  params := map[string]interface{}{
    "id": payload.ID,
  }
  h.Repository.Apply(name, action, params)
}
