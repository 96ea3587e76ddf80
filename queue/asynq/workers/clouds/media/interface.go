package media

type ProcessPayload struct {
  TaskID string `json:"task_id"`
}
