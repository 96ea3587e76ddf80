package clouds

import (
  "github.com/urfave/cli/v2"

  "openbook.local/openbook-api/commands/tasks/clouds/media"
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
