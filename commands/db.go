package commands

import (
  "fmt"
  "log"

  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/models"
  "openbook.local/openbook-api/repositories"
)

type DbHandler struct {
  Db *gorm.DB
}

func NewDbCommand() *cli.Command {
  var h DbHandler
  return &cli.Command{
    Name:  "db",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = DbHandler{
        Db: common.NewDB(),
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "migrate",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.migrate(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "seed",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.seed(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *DbHandler) migrate() error {
  log.Println("process migrator")
  h.Db.AutoMigrate(
    &models.User{},
    &models.Post{},
    &models.PostCircle{},
    &models.PostComment{},
    &models.PostReaction{},
    &models.Circle{},
    &models.List{},
    &models.Follow{},
    &models.Connection{},
    &models.Emoji{},
    &models.EmojiGroup{},
    &models.Task{},
  )
  models.NewMedia().AutoMigrate(h.Db)
  return nil
}

func (h *DbHandler) seed() error {
  log.Println("process seeder")
  circlesRepository := &repositories.CirclesRepository{
    Db: h.Db,
  }
  if err := circlesRepository.EnsureWorld(); err != nil {
    return err
  }
  emojisRepository := &repositories.EmojisRepository{
    Db: h.Db,
  }
  groupID, err := emojisRepository.ApplyGroup("reactions", "#fcba03", 1)
  if err != nil {
    return err
  }
  emojis := []string{"like", "love", "laugh", "wow", "sad", "angry"}
  for i, keyword := range emojis {
    _, err = emojisRepository.Apply(
      groupID,
      keyword,
      fmt.Sprintf("/static/emojis/%s.png", keyword),
      "#fcba03",
      i+1,
    )
    if err != nil {
      return err
    }
  }
  return nil
}
