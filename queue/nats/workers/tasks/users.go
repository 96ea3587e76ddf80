package tasks

import (
  "encoding/json"
  "fmt"
  "log"
  "time"

  "github.com/nats-io/nats.go"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  "openbook.local/openbook-api/repositories"
)

type Users struct {
  NatsContext       *common.NatsContext
  Repository        *repositories.UsersRepository
  CirclesRepository *repositories.CirclesRepository
}

func NewUsers(natsContext *common.NatsContext) *Users {
  h := &Users{
    NatsContext: natsContext,
  }
  h.Repository = &repositories.UsersRepository{
    Db: h.NatsContext.Db,
  }
  h.CirclesRepository = &repositories.CirclesRepository{
    Db: h.NatsContext.Db,
  }
  return h
}

func (h *Users) Subscribe() error {
  h.NatsContext.Conn.Subscribe(config.NATS_USERS_CREATE, h.Apply)
  return nil
}

func (h *Users) Apply(m *nats.Msg) {
  var payload *UsersCreatePayload
  json.Unmarshal(m.Data, &payload)

  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    fmt.Sprintf(config.LOCKS_USERS_CIRCLES_APPLY, payload.ID),
  )
  if !mutex.Lock(3 * time.Second) {
    return
  }
  defer mutex.Unlock()

  if _, err := h.Repository.Find(payload.ID); err != nil {
    log.Println("user not exists", payload.ID)
    return
  }
  h.CirclesRepository.Create(payload.ID, "Connections", "#ffffff")
}
