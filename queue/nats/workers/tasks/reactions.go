package tasks

import (
  "encoding/json"
  "fmt"

  "github.com/nats-io/nats.go"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
)

type Reactions struct {
  NatsContext *common.NatsContext
}

func NewReactions(natsContext *common.NatsContext) *Reactions {
  return &Reactions{
    NatsContext: natsContext,
  }
}

func (h *Reactions) Subscribe() error {
  h.NatsContext.Conn.Subscribe(config.NATS_REACTIONS_CREATE, h.Apply)
  return nil
}

func (h *Reactions) Apply(m *nats.Msg) {
  var payload *ReactionsCreatePayload
  json.Unmarshal(m.Data, &payload)

  if payload.PostID == "" {
    return
  }
  h.NatsContext.Rdb.Del(
    h.NatsContext.Ctx,
    fmt.Sprintf(config.REDIS_KEY_POSTS_EMOJI_COUNT, payload.PostID),
  )
}
