package clouds

import (
  "openbook.local/openbook-api/common"
  workers "openbook.local/openbook-api/queue/asynq/workers/clouds/media"
)

type Media struct {
  AnsqContext *common.AnsqServerContext
}

func NewMedia(ansqContext *common.AnsqServerContext) *Media {
  return &Media{
    AnsqContext: ansqContext,
  }
}

func (h *Media) Register() error {
  workers.NewImages(h.AnsqContext).Register()
  workers.NewVideos(h.AnsqContext).Register()
  return nil
}
