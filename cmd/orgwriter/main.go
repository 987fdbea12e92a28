package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/orgwriter/internal/commands"
	"github.com/gerunddev/orgwriter/internal/config"
	"github.com/gerunddev/orgwriter/internal/logger"
	"github.com/gerunddev/orgwriter/internal/styles"
	"github.com/mattn/go-isatty"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error loading config: "+err.Error()))
		return 1
	}

	l, cleanup := setupLogger(cfg.LogFile)
	defer cleanup()
	l.ConfigLoaded(cfg.InboxFile, cfg.DefaultLevel, cfg.DefaultTodo)

	app := commands.NewApp(cfg, l, version)
	app.Styled = isatty.IsTerminal(os.Stdout.Fd())

	if err := commands.NewRootCmd(app).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		return 1
	}
	return 0
}

// setupLogger logs to the configured file, or warnings only to stderr when
// the file cannot be opened
func setupLogger(path string) (*logger.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		if l, cleanup, err := logger.NewFileLogger(path); err == nil {
			return l, cleanup
		}
	}
	return logger.NewWithLevel(os.Stderr, log.WarnLevel), func() {}
}
