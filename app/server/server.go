package server

import (
	"context"
	"os"

	"github.com/adrianliechti/preview/pkg/cli"
	"github.com/adrianliechti/preview/pkg/static"
	"github.com/adrianliechti/preview/pkg/system"
)

const (
	host = "0.0.0.0"
	port = 5000
)

func Action(c *cli.Context) error {
	root, err := system.ExecutableDir()

	if err != nil {
		return err
	}

	if err := os.Chdir(root); err != nil {
		cli.Warnf("unable to change into %s: %v", root, err)
	}

	return startWebServer(c.Context, root)
}

func startWebServer(ctx context.Context, root string) error {
	s, err := static.New(serverOptions(root))

	if err != nil {
		return err
	}

	return s.ListenAndServe(ctx)
}

func serverOptions(root string) static.Options {
	return static.Options{
		Host: host,
		Port: port,
		Root: root,
	}
}
