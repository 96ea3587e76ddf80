package tasks

import (
  "context"

  "github.com/go-redis/redis/v8"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  tasks "openbook.local/openbook-api/tasks"
)

type PostsHandler struct {
  Db   *gorm.DB
  Rdb  *redis.Client
  Ctx  context.Context
  Task *tasks.PostsTask
}

func NewPostsCommand() *cli.Command {
  var h PostsHandler
  return &cli.Command{
    Name:  "posts",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = PostsHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      h.Task = tasks.NewPostsTask(&common.AnsqClientContext{
        Db:  h.Db,
        Rdb: h.Rdb,
        Ctx: h.Ctx,
      })
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "trending",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.Task.Trending(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "clean-emoji-counts",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.Task.CleanEmojiCounts(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}
