package media

import (
  "context"
  "encoding/json"
  "errors"
  "fmt"
  "log"
  "time"

  "gorm.io/gorm"

  "github.com/hibiken/asynq"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
  mediaRepositories "openbook.local/openbook-api/repositories/media"
)

type Videos struct {
  AnsqContext     *common.AnsqServerContext
  Repository      *mediaRepositories.VideosRepository
  TasksRepository *repositories.TasksRepository
}

func NewVideos(ansqContext *common.AnsqServerContext) *Videos {
  h := &Videos{
    AnsqContext: ansqContext,
  }
  h.Repository = &mediaRepositories.VideosRepository{
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
    fmt.Sprintf(config.LOCKS_TASKS_MEDIA_VIDEOS_PROCESS, payload.TaskID),
  )
  if !mutex.Lock(30 * time.Minute) {
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
  video, err := h.Repository.Find(videoID)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.TasksRepository.Delete(task.ID)
    return nil
  }
  if err != nil {
    return err
  }

  h.Repository.Update(video, "status", config.MEDIA_VIDEO_STATUS_CONVERTING)

  if duration, err := h.Repository.Probe(video); err == nil {
    h.Repository.Update(video, "duration", duration)
  }

  for _, format := range config.VIDEO_FORMATS {
    if _, err := h.Repository.Convert(ctx, video, format); err != nil {
      log.Println("video convert failed", video.ID, format.Name, err)
      h.Repository.Update(video, "status", config.MEDIA_VIDEO_STATUS_FAILED)
      h.TasksRepository.Update(task, "status", 4)
      return nil
    }
  }

  h.Repository.Update(video, "status", config.MEDIA_VIDEO_STATUS_CONVERTED)
  h.TasksRepository.Update(task, "status", 3)

  if common.GetEnvString("OPENBOOK_STORAGE") == "cloud" {
    name := fmt.Sprintf("%v@clouds.videos.sync", video.ID)
    action := config.TASK_ACTION_CLOUDS_MEDIA_VIDEOS_SYNC
    params := map[string]interface{}{
      "id": video.ID,
    }
    h.TasksRepository.Apply(name, action, params)
  }

  return nil
}

func (h *Videos) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_MEDIA_VIDEOS_PROCESS, h.Process)
  return nil
}
