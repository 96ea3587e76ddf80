package workers

import (
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/queue/nats/workers/tasks"
)

type Tasks struct {
  NatsContext *common.NatsContext
}

func NewTasks(natsContext *common.NatsContext) *Tasks {
  return &Tasks{
    NatsContext: natsContext,
  }
}

func (h *Tasks) Subscribe() error {
  tasks.NewUsers(h.NatsContext).Subscribe()
  tasks.NewPosts(h.NatsContext).Subscribe()
  tasks.NewReactions(h.NatsContext).Subscribe()
  tasks.NewMedia(h.NatsContext).Subscribe()
  return nil
}
