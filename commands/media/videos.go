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

type VideosHandler struct {
  Db         *gorm.DB
  Rdb        *redis.Client
  Ctx        context.Context
  Repository *repositories.VideosRepository
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
      h.Repository = &repositories.VideosRepository{
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
            log.Fatal("video id can not be empty")
            return nil
          }
          if err := h.Find(id); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "probe",
        Usage: "",
        Action: func(c *cli.Context) error {
          id := c.Args().Get(0)
          if id == "" {
            log.Fatal("video id can not be empty")
            return nil
          }
          if err := h.Probe(id); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "convert",
        Usage: "",
        Action: func(c *cli.Context) error {
          id := c.Args().Get(0)
          if id == "" {
            log.Fatal("video id can not be empty")
            return nil
          }
          if err := h.Convert(id); err != nil {
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

func (h *VideosHandler) Find(id string) (err error) {
  video, err := h.Repository.Find(id)
  if err != nil {
    return
  }
  log.Println("video info", h.Repository.Path(video), h.Repository.Url(video))
  return nil
}

func (h *VideosHandler) Probe(id string) (err error) {
  video, err := h.Repository.Find(id)
  if err != nil {
    return
  }
  duration, err := h.Repository.Probe(video)
  if err != nil {
    return
  }
  log.Println("video duration", duration)
  return nil
}

func (h *VideosHandler) Convert(id string) (err error) {
  log.Println("media videos convert", id)

  video, err := h.Repository.Find(id)
  if err != nil {
    return
  }
  h.Repository.Update(video, "status", config.MEDIA_VIDEO_STATUS_CONVERTING)
  if duration, err := h.Repository.Probe(video); err == nil {
    h.Repository.Update(video, "duration", duration)
  }
  for _, format := range config.VIDEO_FORMATS {
    if _, err = h.Repository.Convert(h.Ctx, video, format); err != nil {
      h.Repository.Update(video, "status", config.MEDIA_VIDEO_STATUS_FAILED)
      return
    }
  }
  h.Repository.Update(video, "status", config.MEDIA_VIDEO_STATUS_CONVERTED)

  return nil
}

func (h *VideosHandler) Clean() (err error) {
  log.Println("media videos clean")

  conditions := map[string]interface{}{
    "node":      common.GetEnvInt("OPENBOOK_STORAGE_NODE"),
    "is_synced": true,
  }
  videos := h.Repository.Ranking(
    []string{"id", "node", "filehash", "extension"},
    conditions,
    "size",
    1,
    1000,
  )
  for _, video := range videos {
    os.Remove(h.Repository.Path(video))
    h.Rdb.ZRem(h.Ctx, config.REDIS_KEY_CLOUDS_SYNCING_MEDIA_VIDEOS, video.ID)
  }

  return nil
}
