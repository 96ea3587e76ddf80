package tasks

import (
  "encoding/json"
  "fmt"
  "time"

  "github.com/nats-io/nats.go"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
  mediaRepositories "openbook.local/openbook-api/repositories/media"
)

type Posts struct {
  NatsContext      *common.NatsContext
  Repository       *repositories.TasksRepository
  ImagesRepository *mediaRepositories.ImagesRepository
}

func NewPosts(natsContext *common.NatsContext) *Posts {
  h := &Posts{
    NatsContext: natsContext,
  }
  h.Repository = &repositories.TasksRepository{
    Db: h.NatsContext.Db,
  }
  h.ImagesRepository = &mediaRepositories.ImagesRepository{
    Db:  h.NatsContext.Db,
    Ctx: h.NatsContext.Ctx,
  }
  return h
}

func (h *Posts) Subscribe() error {
  h.NatsContext.Conn.Subscribe(config.NATS_POSTS_CREATE, h.Apply)
  return nil
}

func (h *Posts) Apply(m *nats.Msg) {
  var payload *PostsCreatePayload
  json.Unmarshal(m.Data, &payload)

  if common.GetEnvString("OPENBOOK_STORAGE") != "cloud" {
    return
  }

  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    fmt.Sprintf(config.LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_APPLY, payload.ID),
  )
  if !mutex.Lock(3 * time.Second) {
    return
  }
  defer mutex.Unlock()

  image, err := h.ImagesRepository.GetByPost(payload.ID)
  if err != nil {
    return
  }
  if image.IsSynced {
    return
  }
  name := fmt.Sprintf("%v@clouds.images.sync", image.ID)
  action := config.TASK_ACTION_CLOUDS_MEDIA_IMAGES_SYNC
  params := map[string]interface{}{
    "id": image.ID,
  }
  h.Repository.Apply(name, action, params)
}
