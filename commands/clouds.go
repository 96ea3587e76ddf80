package commands

import (
  "github.com/urfave/cli/v2"

  "openbook.local/openbook-api/commands/clouds"
)

func NewCloudsCommand() *cli.Command {
  return &cli.Command{
    Name:  "clouds",
    Usage: "",
    Subcommands: []*cli.Command{
      clouds.NewMediaCommand(),
    },
  }
}
