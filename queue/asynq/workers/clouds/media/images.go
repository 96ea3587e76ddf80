package media

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "log"
  "time"

  "gorm.io/gorm"

  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
  cloudsRepositories "openbook.local/openbook-api/repositories/clouds/media"
  mediaRepositories "openbook.local/openbook-api/repositories/media"
)

type Images struct {
  AnsqContext      *common.AnsqServerContext
  Repository       *cloudsRepositories.ImagesRepository
  ImagesRepository *mediaRepositories.ImagesRepository
  TasksRepository  *repositories.TasksRepository
}

func NewImages(ansqContext *common.AnsqServerContext) *Images {
  h := &Images{
    AnsqContext: ansqContext,
  }
  h.Repository = &cloudsRepositories.ImagesRepository{
    Db:  h.AnsqContext.Db,
    Ctx: h.AnsqContext.Ctx,
  }
  h.ImagesRepository = &mediaRepositories.ImagesRepository{
    Db:  h.AnsqContext.Db,
    Ctx: h.AnsqContext.Ctx,
  }
  h.TasksRepository = &repositories.TasksRepository{
    Db: h.AnsqContext.Db,
  }
  return h
}

func (h *Images) Process(ctx context.Context, t *asynq.Task) error {
  var payload ProcessPayload
  json.Unmarshal(t.Payload(), &payload)

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_PROCESS, payload.TaskID),
  )
  if !mutex.Lock(30 * time.Second) {
    return nil
  }
  defer mutex.Unlock()

  task, err := h.TasksRepository.Find(payload.TaskID)
  if err != nil {
    return err
  }
  if _, ok := task.Params["id"]; !ok {
    h.TasksRepository.Delete(task.ID)
    return nil
  }
  imageID := task.Params["id"].(string)
  image, err := h.ImagesRepository.Find(imageID)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.TasksRepository.Delete(task.ID)
    return nil
  }
  if err != nil {
    return err
  }
  if image.IsSynced {
    h.TasksRepository.Update(task, "status", 3)
    return nil
  }

  timestamp := time.Now().UnixMilli()
  score, _ := h.AnsqContext.Rdb.ZScore(
    h.AnsqContext.Ctx,
    config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_IMAGES,
    image.ID,
  ).Result()
  if score > 0 && timestamp-int64(score) < 900000 {
    log.Println("clouds media images syncing", image.ID)
    return nil
  }

  if _, err := h.Repository.Sync(image, 0); err != nil {
    log.Println("clouds media images sync failed", image.ID, err)
    h.TasksRepository.Update(task, "status", 4)
    return nil
  }

  h.AnsqContext.Rdb.ZAdd(
    h.AnsqContext.Ctx,
    config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_IMAGES,
    &redis.Z{
      Score:  float64(timestamp),
      Member: image.ID,
    },
  )
  h.TasksRepository.Update(task, "status", 3)

  return nil
}

func (h *Images) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_CLOUDS_MEDIA_IMAGES_PROCESS, h.Process)
  return nil
}
