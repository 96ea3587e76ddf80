package media

import (
  "context"
  "strconv"

  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  tasks "openbook.local/openbook-api/tasks/clouds/media"
)

type ImagesHandler struct {
  Db    *gorm.DB
  Rdb   *redis.Client
  Asynq *asynq.Client
  Ctx   context.Context
  Task  *tasks.ImagesTask
}

func NewImagesCommand() *cli.Command {
  var h ImagesHandler
  return &cli.Command{
    Name:  "images",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = ImagesHandler{
        Db:    common.NewDB(),
        Rdb:   common.NewRedis(),
        Asynq: common.NewAsynqClient(),
        Ctx:   context.Background(),
      }
      h.Task = tasks.NewImagesTask(&common.AnsqClientContext{
        Db:   h.Db,
        Rdb:  h.Rdb,
        Ctx:  h.Ctx,
        Conn: h.Asynq,
      })
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "init",
        Usage: "",
        Action: func(c *cli.Context) error {
          limit, _ := strconv.Atoi(c.Args().Get(0))
          if limit < 20 {
            limit = 20
          }
          if err := h.Task.Init(limit); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "flush",
        Usage: "",
        Action: func(c *cli.Context) error {
          limit, _ := strconv.Atoi(c.Args().Get(0))
          if limit < 20 {
            limit = 20
          }
          if err := h.Task.Flush(limit); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}
