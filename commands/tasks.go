package commands

import (
  "github.com/urfave/cli/v2"

  "openbook.local/openbook-api/commands/tasks"
)

func NewTasksCommand() *cli.Command {
  return &cli.Command{
    Name:  "tasks",
    Usage: "",
    Subcommands: []*cli.Command{
      tasks.NewMediaCommand(),
      tasks.NewCloudsCommand(),
      tasks.NewPostsCommand(),
    },
  }
}
