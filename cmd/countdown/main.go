package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/countdown/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override countdown config path (optional)")
	prefsPath := flag.String("prefs", "", "override UI preferences path (optional)")
	htmlOut := flag.Bool("html", false, "render the page once as HTML to stdout and exit")
	logPath := flag.String("log", "", "write debug log to this file (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		LogPath:    *logPath,
	}
	if *htmlOut {
		opts.HTML = os.Stdout
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "countdown: %v\n", err)
		return 1
	}
	return 0
}
