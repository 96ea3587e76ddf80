package media

import (
  "encoding/json"

  "github.com/hibiken/asynq"

  "openbook.local/openbook-api/config"
)

type Images struct{}

func (h *Images) Process(taskID string) (*asynq.Task, error) {
  payload, err := json.Marshal(ProcessPayload{taskID})
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(config.ASYNQ_JOBS_CLOUDS_MEDIA_IMAGES_PROCESS, payload), nil
}
