package tasks

import (
  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/queue/nats/workers/tasks/media"
)

type Media struct {
  NatsContext *common.NatsContext
}

func NewMedia(natsContext *common.NatsContext) *Media {
  return &Media{
    NatsContext: natsContext,
  }
}

func (h *Media) Subscribe() error {
  media.NewVideos(h.NatsContext).Subscribe()
  return nil
}
