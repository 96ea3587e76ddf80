package media

import (
  "fmt"
  "log"
  "time"

  "github.com/hibiken/asynq"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  jobs "openbook.local/openbook-api/queue/asynq/jobs/clouds/media"
  "openbook.local/openbook-api/repositories"
  mediaRepositories "openbook.local/openbook-api/repositories/media"
)

type VideosTask struct {
  Job              *jobs.Videos
  AnsqContext      *common.AnsqClientContext
  VideosRepository *mediaRepositories.VideosRepository
  TasksRepository  *repositories.TasksRepository
}

func NewVideosTask(ansqContext *common.AnsqClientContext) *VideosTask {
  return &VideosTask{
    AnsqContext: ansqContext,
    VideosRepository: &mediaRepositories.VideosRepository{
      Db:  ansqContext.Db,
      Ctx: ansqContext.Ctx,
    },
    TasksRepository: &repositories.TasksRepository{
      Db: ansqContext.Db,
    },
  }
}

func (t *VideosTask) Init(limit int) (err error) {
  log.Println("tasks clouds media videos init")
  if common.GetEnvString("OPENBOOK_STORAGE") != "cloud" {
    return
  }
  node := common.GetEnvInt("OPENBOOK_STORAGE_NODE")
  videos := t.VideosRepository.Ranking(
    []string{"id"},
    map[string]interface{}{
      "node":      node,
      "is_synced": false,
      "status":    config.MEDIA_VIDEO_STATUS_CONVERTED,
    },
    "timestamp",
    1,
    limit,
  )
  for _, video := range videos {
    name := fmt.Sprintf("%v@clouds.videos.sync", video.ID)
    action := config.TASK_ACTION_CLOUDS_MEDIA_VIDEOS_SYNC
    params := map[string]interface{}{
      "id": video.ID,
    }
    t.TasksRepository.Apply(name, action, params)
  }
  return
}

func (t *VideosTask) Flush(limit int) (err error) {
  log.Println("tasks clouds media videos flush")
  mutex := common.NewMutex(
    t.AnsqContext.Rdb,
    t.AnsqContext.Ctx,
    config.LOCKS_TASKS_CLOUDS_MEDIA_VIDEOS_FLUSH,
  )
  if !mutex.Lock(30 * time.Second) {
    return
  }
  defer mutex.Unlock()

  tasks := t.TasksRepository.Ranking(
    []string{"id", "params", "timestamp"},
    map[string]interface{}{
      "action": config.TASK_ACTION_CLOUDS_MEDIA_VIDEOS_SYNC,
      "status": 1,
    },
    "timestamp",
    1,
    limit,
  )
  for _, task := range tasks {
    if job, err := t.Job.Process(task.ID); err == nil {
      t.AnsqContext.Conn.Enqueue(
        job,
        asynq.Queue(config.ASYNQ_QUEUE_CLOUDS_MEDIA),
        asynq.MaxRetry(0),
        asynq.Timeout(5*time.Minute),
      )
    }
    t.TasksRepository.Updates(task, map[string]interface{}{
      "timestamp": time.Now().UnixMicro(),
      "status":    2,
    })
  }
  return
}
