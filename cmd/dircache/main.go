package main

import (
	"context"
	"os"

	"github.com/Lord-Y/dircache/cmd/dircache/commands"
	"github.com/Lord-Y/dircache/logger"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := cli.Command{
		Name:                  "dircache",
		Usage:                 "Directory entries served through a cache",
		Description:           "Serves bolt backed directories through their entry cache and exposes cache administration endpoints",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			commands.Server(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.NewLogger().Fatal().Err(err).Msg("Error occured while executing the program")
	}
}
