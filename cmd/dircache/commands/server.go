package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Lord-Y/dircache/internal/server"
	"github.com/Lord-Y/dircache/logger"
	"github.com/urfave/cli/v3"
)

func Server() *cli.Command {
	var app server.Server

	return &cli.Command{
		Name:  "server",
		Usage: "Allow us to start instance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "host",
				Value:       "127.0.0.1",
				Usage:       "Address used by this instance",
				Destination: &app.Host,
			},
			&cli.IntFlag{
				Name:        "http-port",
				Aliases:     []string{"hp"},
				Usage:       "http port to use",
				Value:       15080,
				Destination: &app.HTTPPort,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path of the yaml file holding directories config",
				Required:    true,
				Destination: &app.ConfigFile,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Aliases:     []string{"d"},
				Usage:       "Directory where the bolt database is stored",
				Value:       filepath.Join(os.TempDir(), "dircache"),
				Destination: &app.DataDir,
			},
		},
		Action: func(context.Context, *cli.Command) error {
			app.Logger = logger.NewLogger()

			return app.Start()
		},
	}
}
