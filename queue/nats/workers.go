package nats

import (
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/queue/nats/workers"
)

type Workers struct {
  NatsContext *common.NatsContext
}

func NewWorkers(natsContext *common.NatsContext) *Workers {
  return &Workers{
    NatsContext: natsContext,
  }
}

func (h *Workers) Subscribe() error {
  workers.NewTasks(h.NatsContext).Subscribe()
  return nil
}
