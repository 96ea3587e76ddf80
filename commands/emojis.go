package commands

import (
  "log"
  "os"

  "github.com/tidwall/gjson"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
)

type EmojisHandler struct {
  Db         *gorm.DB
  Repository *repositories.EmojisRepository
}

func NewEmojisCommand() *cli.Command {
  var h EmojisHandler
  return &cli.Command{
    Name:  "emojis",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = EmojisHandler{
        Db: common.NewDB(),
      }
      h.Repository = &repositories.EmojisRepository{
        Db: h.Db,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "import",
        Usage: "",
        Action: func(c *cli.Context) error {
          fixture := c.Args().Get(0)
          if fixture == "" {
            log.Fatal("fixture can not be empty")
            return nil
          }
          if err := h.Import(fixture); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *EmojisHandler) Import(fixture string) error {
  log.Println("emojis import...")

  content, err := os.ReadFile(fixture)
  if err != nil {
    return err
  }

  groups := gjson.ParseBytes(content).Array()
  for i, group := range groups {
    groupID, err := h.Repository.ApplyGroup(
      group.Get("keyword").String(),
      group.Get("color").String(),
      i+1,
    )
    if err != nil {
      return err
    }
    emojis := group.Get("emojis").Array()
    for j, emoji := range emojis {
      h.Repository.Apply(
        groupID,
        emoji.Get("keyword").String(),
        emoji.Get("image").String(),
        emoji.Get("color").String(),
        j+1,
      )
    }
  }

  return nil
}
