package media

import (
  "context"
  "log"

  "github.com/go-redis/redis/v8"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  cloudsRepositories "openbook.local/openbook-api/repositories/clouds/media"
  repositories "openbook.local/openbook-api/repositories/media"
)

type VideosHandler struct {
  Db               *gorm.DB
  Rdb              *redis.Client
  Ctx              context.Context
  VideosRepository *repositories.VideosRepository
  Repository       *cloudsRepositories.VideosRepository
}

func NewVideosCommand() *cli.Command {
  var h VideosHandler
  return &cli.Command{
    Name:  "videos",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = VideosHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      h.VideosRepository = &repositories.VideosRepository{
        Db:  h.Db,
        Ctx: h.Ctx,
      }
      h.Repository = &cloudsRepositories.VideosRepository{
        Db:  h.Db,
        Ctx: h.Ctx,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "sync",
        Usage: "",
        Action: func(c *cli.Context) (err error) {
          id := c.Args().Get(0)
          if id == "" {
            log.Fatal("id can not be empty")
            return nil
          }
          if err = h.Sync(id); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *VideosHandler) Sync(id string) (err error) {
  log.Println("clouds media videos sync...")

  video, err := h.VideosRepository.Find(id)
  if err != nil {
    return
  }
  cloudUrl, err := h.Repository.Sync(video, 1)
  if err != nil {
    return
  }
  if cloudUrl != "" {
    h.VideosRepository.Updates(video, map[string]interface{}{
      "cloud_url": cloudUrl,
      "is_synced": true,
    })
  }

  return nil
}
