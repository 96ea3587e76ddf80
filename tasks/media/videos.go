package media

import (
  "log"
  "time"

  "github.com/hibiken/asynq"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  jobs "openbook.local/openbook-api/queue/asynq/jobs/media"
  "openbook.local/openbook-api/repositories"
)

type VideosTask struct {
  Job             *jobs.Videos
  AnsqContext     *common.AnsqClientContext
  TasksRepository *repositories.TasksRepository
}

func NewVideosTask(ansqContext *common.AnsqClientContext) *VideosTask {
  return &VideosTask{
    AnsqContext: ansqContext,
    TasksRepository: &repositories.TasksRepository{
      Db: ansqContext.Db,
    },
  }
}

func (t *VideosTask) Flush(limit int) (err error) {
  log.Println("tasks media videos flush")
  mutex := common.NewMutex(
    t.AnsqContext.Rdb,
    t.AnsqContext.Ctx,
    config.LOCKS_TASKS_MEDIA_VIDEOS_FLUSH,
  )
  if !mutex.Lock(30 * time.Second) {
    return
  }
  defer mutex.Unlock()

  tasks := t.TasksRepository.Ranking(
    []string{"id", "params", "timestamp"},
    map[string]interface{}{
      "action": config.TASK_ACTION_MEDIA_VIDEOS_CONVERT,
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
        asynq.Queue(config.ASYNQ_QUEUE_MEDIA_VIDEOS),
        asynq.MaxRetry(0),
        asynq.Timeout(30*time.Minute),
      )
    }
    t.TasksRepository.Updates(task, map[string]interface{}{
      "timestamp": time.Now().UnixMicro(),
      "status":    2,
    })
  }
  return
}
