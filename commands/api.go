package commands

import (
  "context"
  "fmt"
  "log"
  "net/http"
  "os"

  "github.com/go-chi/chi/v5"
  "github.com/go-redis/redis/v8"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/api/v1"
  "openbook.local/openbook-api/common"
)

type ApiHandler struct {
  Db  *gorm.DB
  Rdb *redis.Client
  Ctx context.Context
}

func NewApiCommand() *cli.Command {
  var h ApiHandler
  return &cli.Command{
    Name:  "api",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = ApiHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.Run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *ApiHandler) Run() error {
  log.Println("api running...")

  apiContext := &common.ApiContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Nats: common.NewNats(),
  }

  r := chi.NewRouter()
  r.Get("/health", h.Health)
  r.Route("/v1", func(r chi.Router) {
    r.Mount("/auth", v1.NewAuthRouter(apiContext))
    r.Mount("/posts", v1.NewPostsRouter(apiContext))
    r.Mount("/circles", v1.NewCirclesRouter(apiContext))
    r.Mount("/lists", v1.NewListsRouter(apiContext))
    r.Mount("/follows", v1.NewFollowsRouter(apiContext))
    r.Mount("/connections", v1.NewConnectionsRouter(apiContext))
    r.Mount("/emojis", v1.NewEmojisRouter(apiContext))
    r.Mount("/clouds", v1.NewCloudsRouter(apiContext))
  })
  if common.GetEnvString("OPENBOOK_STORAGE") == "local" {
    fs := http.FileServer(http.Dir(common.GetEnvString("OPENBOOK_STORAGE_PATH")))
    r.Handle("/media/*", http.StripPrefix("/media/", fs))
  }

  err := http.ListenAndServe(
    fmt.Sprintf("127.0.0.1:%v", os.Getenv("OPENBOOK_API_PORT")),
    r,
  )
  if err != nil {
    return err
  }

  return nil
}

func (h *ApiHandler) Health(
  w http.ResponseWriter,
  r *http.Request,
) {
  sqlDB, err := h.Db.DB()
  if err == nil {
    err = sqlDB.Ping()
  }
  if err == nil {
    err = h.Rdb.Ping(h.Ctx).Err()
  }
  if err != nil {
    w.WriteHeader(http.StatusServiceUnavailable)
    w.Write([]byte(err.Error()))
    return
  }
  w.WriteHeader(http.StatusOK)
  w.Write([]byte("ok"))
}
