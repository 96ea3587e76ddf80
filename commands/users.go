package commands

import (
  "log"

  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "openbook.local/openbook-api/common"
  "openbook.local/openbook-api/repositories"
)

type UsersHandler struct {
  Db                *gorm.DB
  Repository        *repositories.UsersRepository
  CirclesRepository *repositories.CirclesRepository
}

func NewUsersCommand() *cli.Command {
  var h UsersHandler
  return &cli.Command{
    Name:  "users",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = UsersHandler{
        Db: common.NewDB(),
      }
      h.Repository = &repositories.UsersRepository{
        Db: h.Db,
      }
      h.CirclesRepository = &repositories.CirclesRepository{
        Db: h.Db,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "create",
        Usage: "",
        Action: func(c *cli.Context) error {
          username := c.Args().Get(0)
          if username == "" {
            log.Fatal("username can not be empty")
            return nil
          }
          email := c.Args().Get(1)
          if email == "" {
            log.Fatal("email can not be empty")
            return nil
          }
          password := c.Args().Get(2)
          if password == "" {
            log.Fatal("password can not be empty")
            return nil
          }
          name := c.Args().Get(3)
          if err := h.Create(username, email, password, name); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *UsersHandler) Create(
  username string,
  email string,
  password string,
  name string,
) error {
  log.Println("users create...")

  id, err := h.Repository.Create(username, email, password, name, "", "")
  if err != nil {
    return err
  }
  h.CirclesRepository.Create(id, "Connections", "#ffffff")

  log.Println("user created", id)

  return nil
}
