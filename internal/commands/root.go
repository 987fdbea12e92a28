package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gerunddev/orgwriter/internal/config"
	"github.com/gerunddev/orgwriter/internal/diff"
	"github.com/gerunddev/orgwriter/internal/logger"
	"github.com/gerunddev/orgwriter/internal/orgfile"
	"github.com/gerunddev/orgwriter/internal/styles"
	"github.com/gerunddev/orgwriter/org"
	"github.com/spf13/cobra"
)

// App holds what every command needs.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	Clock    org.Clock
	Appender *orgfile.Appender
	// Styled enables glamour rendering of previews
	Styled  bool
	Version string
}

// NewApp wires an App from a loaded configuration.
func NewApp(cfg *config.Config, l *logger.Logger, version string) *App {
	return &App{
		Config:   cfg,
		Log:      l,
		Clock:    org.SystemClock,
		Appender: orgfile.NewAppender(l),
		Version:  version,
	}
}

// SetLogger replaces the logger used by the app and its appender.
func (app *App) SetLogger(l *logger.Logger) {
	app.Log = l
	app.Appender = orgfile.NewAppender(l)
}

// NewRootCmd creates the top-level "orgwriter" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "orgwriter",
		Short:         "Write org-mode entries and outlines",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				app.SetLogger(app.Log.Tee(cmd.ErrOrStderr()))
				app.Log.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "also write log messages to stderr")

	root.AddCommand(
		newEntryCmd(app),
		newRenderCmd(app),
		newLinkCmd(app),
		newConfigCmd(app),
		newHistoryCmd(app),
		newVersionCmd(app),
	)

	return root
}

// outputFlags are shared by commands that either print or append.
type outputFlags struct {
	append bool
	file   string
	dryRun bool
}

func (o *outputFlags) register(cmd *cobra.Command, defaultFile string) {
	cmd.Flags().BoolVarP(&o.append, "append", "a", false, "append to the org file instead of printing")
	cmd.Flags().StringVarP(&o.file, "file", "f", defaultFile, "org file to append to")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "show the change to the org file without writing it")
}

// emit prints text, previews appending it, or appends it
func (app *App) emit(cmd *cobra.Command, out outputFlags, text string) error {
	w := cmd.OutOrStdout()

	if !out.append && !out.dryRun {
		_, err := fmt.Fprint(w, orgfile.Prepare(text))
		return err
	}

	path, err := config.ExpandPath(out.file)
	if err != nil {
		return fmt.Errorf("invalid file %q: %w", out.file, err)
	}

	if size := len(orgfile.Prepare(text)); size > orgfile.AtomicWriteLimit {
		fmt.Fprintln(w, styles.WarningStyle.Render(fmt.Sprintf(
			"! %d bytes exceed the %d byte atomic write limit", size, orgfile.AtomicWriteLimit)))
	}

	if out.dryRun {
		before, err := orgfile.ReadExisting(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		fmt.Fprint(w, diff.Preview(path, before, orgfile.Appended(before, text), app.Styled))
		fmt.Fprintln(w, styles.DimStyle.Render("dry run: "+path+" not modified"))
		return nil
	}

	if err := app.Appender.Append(path, text); err != nil {
		app.Log.FileError(path, err)
		return err
	}

	fmt.Fprintln(w, styles.SuccessStyle.Render("✓ Appended to "+path))
	return nil
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orgwriter v%s\n", app.Version)
		},
	}
}
