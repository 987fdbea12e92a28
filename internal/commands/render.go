package commands

import (
	"fmt"
	"io"

	"github.com/gerunddev/orgwriter/internal/outline"
	"github.com/gerunddev/orgwriter/org"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var (
		level    int
		created  bool
		assignID bool
		output   outputFlags
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a YAML outline as org text",
		Long: `Render a YAML outline document as org text. Each node may have
heading, todo, tags, scheduled, properties, body and children.
Use - to read the outline from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 0 {
				return fmt.Errorf("level must not be negative, got %d", level)
			}

			opts := outline.Options{AssignIDs: assignID}
			if created {
				opts.Created = app.Clock
			}

			node, err := loadOutline(args[0], cmd.InOrStdin(), opts)
			if err != nil {
				app.Log.FileError(args[0], err)
				return err
			}
			app.Log.OutlineLoaded(args[0], node.Count())

			return app.emit(cmd, output, node.RenderAt(level))
		},
	}

	cfg := app.Config
	cmd.Flags().IntVarP(&level, "level", "l", 0, "depth of the outline root")
	cmd.Flags().BoolVar(&created, "created", cfg.AddCreated, "add CREATED properties")
	cmd.Flags().BoolVar(&assignID, "id", cfg.AssignIDs, "add ID properties")
	output.register(cmd, cfg.InboxFile)

	return cmd
}

func loadOutline(path string, stdin io.Reader, opts outline.Options) (*org.Node, error) {
	if path != "-" {
		return outline.Load(path, opts)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read outline: %w", err)
	}
	return outline.Parse(data, opts)
}
