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

type Videos struct {
  AnsqContext      *common.AnsqServerContext
  Repository       *cloudsRepositories.VideosRepository
  VideosRepository *mediaRepositories.VideosRepository
  TasksRepository  *repositories.TasksRepository
}

func NewVideos(ansqContext *common.AnsqServerContext) *Videos {
  h := &Videos{
    AnsqContext: ansqContext,
  }
  h.Repository = &cloudsRepositories.VideosRepository{
    Db:  h.AnsqContext.Db,
    Ctx: h.AnsqContext.Ctx,
  }
  h.VideosRepository = &mediaRepositories.VideosRepository{
    Db:  h.AnsqContext.Db,
    Ctx: h.AnsqContext.Ctx,
  }
  h.TasksRepository = &repositories.TasksRepository{
    Db: h.AnsqContext.Db,
  }
  return h
}

func (h *Videos) Process(ctx context.Context, t *asynq.Task) error {
  var payload ProcessPayload
  json.Unmarshal(t.Payload(), &payload)

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_TASKS_CLOUDS_MEDIA_VIDEOS_PROCESS, payload.TaskID),
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
  videoID := task.Params["id"].(string)
  video, err := h.VideosRepository.Find(videoID)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.TasksRepository.Delete(task.ID)
    return nil
  }
  if err != nil {
    return err
  }
  if video.Status != config.MEDIA_VIDEO_STATUS_CONVERTED {
    log.Println("clouds media videos not converted", video.ID)
    return nil
  }
  if video.IsSynced {
    h.TasksRepository.Update(task, "status", 3)
    return nil
  }

  timestamp := time.Now().UnixMilli()
  score, _ := h.AnsqContext.Rdb.ZScore(
    h.AnsqContext.Ctx,
    config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_VIDEOS,
    video.ID,
  ).Result()
  if score > 0 && timestamp-int64(score) < 900000 {
    log.Println("clouds media videos syncing", video.ID)
    return nil
  }

  if _, err := h.Repository.Sync(video, 0); err != nil {
    log.Println("clouds media videos sync failed", video.ID, err)
    h.TasksRepository.Update(task, "status", 4)
    return nil
  }

  h.AnsqContext.Rdb.ZAdd(
    h.AnsqContext.Ctx,
    config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_VIDEOS,
    &redis.Z{
      Score:  float64(timestamp),
      Member: video.ID,
    },
  )
  h.TasksRepository.Update(task, "status", 3)

  return nil
}

func (h *Videos) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_CLOUDS_MEDIA_VIDEOS_PROCESS, h.Process)
  return nil
}
