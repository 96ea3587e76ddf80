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

type ImagesTask struct {
  Job              *jobs.Images
  AnsqContext      *common.AnsqClientContext
  ImagesRepository *mediaRepositories.ImagesRepository
  TasksRepository  *repositories.TasksRepository
}

func NewImagesTask(ansqContext *common.AnsqClientContext) *ImagesTask {
  return &ImagesTask{
    AnsqContext: ansqContext,
    ImagesRepository: &mediaRepositories.ImagesRepository{
      Db:  ansqContext.Db,
      Ctx: ansqContext.Ctx,
    },
    TasksRepository: &repositories.TasksRepository{
      Db: ansqContext.Db,
    },
  }
}

func (t *ImagesTask) Init(limit int) (err error) {
  log.Println("tasks clouds media images init")
  if common.GetEnvString("OPENBOOK_STORAGE") != "cloud" {
    return
  }
  node := common.GetEnvInt("OPENBOOK_STORAGE_NODE")
  images := t.ImagesRepository.Ranking(
    []string{"id"},
    map[string]interface{}{
      "node":      node,
      "is_synced": false,
    },
    "timestamp",
    1,
    limit,
  )
  for _, image := range images {
    name := fmt.Sprintf("%v@clouds.images.sync", image.ID)
    action := config.TASK_ACTION_CLOUDS_MEDIA_IMAGES_SYNC
    params := map[string]interface{}{
      "id": image.ID,
    }
    t.TasksRepository.Apply(name, action, params)
  }
  return
}

func (t *ImagesTask) Flush(limit int) (err error) {
  log.Println("tasks clouds media images flush")
  mutex := common.NewMutex(
    t.AnsqContext.Rdb,
    t.AnsqContext.Ctx,
    config.LOCKS_TASKS_CLOUDS_MEDIA_IMAGES_FLUSH,
  )
  if !mutex.Lock(30 * time.Second) {
    return
  }
  defer mutex.Unlock()

  tasks := t.TasksRepository.Ranking(
    []string{"id", "params", "timestamp"},
    map[string]interface{}{
      "action": config.TASK_ACTION_CLOUDS_MEDIA_IMAGES_SYNC,
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
