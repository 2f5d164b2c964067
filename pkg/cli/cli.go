package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
)

type App = cli.App
type Context = cli.Context

func Warn(v ...any) {
	slog.Warn(fmt.Sprint(v...))
}

func Warnf(format string, a ...any) {
	Warn(fmt.Sprintf(format, a...))
}

func Fatal(v ...any) {
	slog.Error(fmt.Sprint(v...))
	os.Exit(1)
}
