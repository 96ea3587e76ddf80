package workers

import (
  "openbook.local/openbook-api/common"
  workers "openbook.local/openbook-api/queue/asynq/workers/clouds"
)

type Clouds struct {
  AnsqContext *common.AnsqServerContext
}

func NewClouds(ansqContext *common.AnsqServerContext) *Clouds {
  return &Clouds{
    AnsqContext: ansqContext,
  }
}

func (h *Clouds) Register() error {
  workers.NewMedia(h.AnsqContext).Register()
  return nil
}
