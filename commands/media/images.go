package media

import (
  "context"
  "log"
  "os"

  "github.com/go-redis/redis/v8"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/config"
  repositories "openbook.local/openbook-api/repositories/media"
)

type ImagesHandler struct {
  Db         *gorm.DB
  Rdb        *redis.Client
  Ctx        context.Context
  Repository *repositories.ImagesRepository
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
      h.Repository = &repositories.ImagesRepository{
        Db:  h.Db,
        Ctx: h.Ctx,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "find",
        Usage: "",
        Action: func(c *cli.Context) error {
          id := c.Args().Get(0)
          if id == "" {
            log.Fatal("image id can not be empty")
            return nil
          }
          if err := h.Find(id); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "clean",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.Clean(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *ImagesHandler) Find(id string) (err error) {
  image, err := h.Repository.Find(id)
  if err != nil {
    return
  }
  log.Println("image info", h.Repository.Path(image), h.Repository.Url(image))
  return nil
}

func (h *ImagesHandler) Clean() (err error) {
  log.Println("media images clean")

  conditions := map[string]interface{}{
    "node":      common.GetEnvInt("OPENBOOK_STORAGE_NODE"),
    "is_synced": true,
  }
  images := h.Repository.Ranking(
    []string{"id", "node", "filehash", "extension"},
    conditions,
    "size",
    1,
    1000,
  )
  for _, image := range images {
    os.Remove(h.Repository.Path(image))
    h.Rdb.ZRem(h.Ctx, config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_IMAGES, image.ID)
  }

  return nil
}
