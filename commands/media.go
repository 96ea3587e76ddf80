package commands

import (
  "github.com/urfave/cli/v2"

  "openbook.local/openbook-api/commands/media"
)

func NewMediaCommand() *cli.Command {
  return &cli.Command{
    Name:  "media",
    Usage: "",
    Subcommands: []*cli.Command{
      media.NewImagesCommand(),
      media.NewVideosCommand(),
    },
  }
}
