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

type ImagesHandler struct {
  Db               *gorm.DB
  Rdb              *redis.Client
  Ctx              context.Context
  ImagesRepository *repositories.ImagesRepository
  Repository       *cloudsRepositories.ImagesRepository
}

func NewImagesCommand() *cli.Command {
  var h ImagesHandler
  return &cli.Command{
    Name:  "images",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = ImagesHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      h.ImagesRepository = &repositories.ImagesRepository{
        Db:  h.Db,
        Ctx: h.Ctx,
      }
      h.Repository = &cloudsRepositories.ImagesRepository{
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

func (h *ImagesHandler) Sync(id string) (err error) {
  log.Println("clouds media images sync...")

  image, err := h.ImagesRepository.Find(id)
  if err != nil {
    return
  }
  cloudUrl, err := h.Repository.Sync(image, 1)
  if err != nil {
    return
  }
  if cloudUrl != "" {
    h.ImagesRepository.Updates(image, map[string]interface{}{
      "cloud_url": cloudUrl,
      "is_synced": true,
    })
  }

  return nil
}
