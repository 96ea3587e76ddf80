package media

import (
  "encoding/json"

  "github.com/hibiken/asynq"

  "openbook.local/openbook-api/config"
)

type Videos struct{}

func (h *Videos) Process(taskID string) (*asynq.Task, error) {
  payload, err := json.Marshal(ProcessPayload{taskID})
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(config.ASYNQ_JOBS_MEDIA_VIDEOS_PROCESS, payload), nil
}
