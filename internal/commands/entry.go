package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/gerunddev/orgwriter/internal/outline"
	"github.com/gerunddev/orgwriter/org"
	"github.com/spf13/cobra"
)

type entryFlags struct {
	todo      string
	tags      []string
	scheduled string
	today     bool
	props     []string
	body      string
	bodyStdin bool
	level     int
	created   bool
	assignID  bool
	output    outputFlags
}

func newEntryCmd(app *App) *cobra.Command {
	var f entryFlags

	cmd := &cobra.Command{
		Use:   "entry [heading...]",
		Short: "Format a single org entry",
		Example: `  orgwriter entry Call the dentist --todo TODO --today
  orgwriter entry Reading --tag books --prop AUTHOR=Knuth --body "volume 1"
  orgwriter entry Standup notes --body-stdin --append < notes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bodySet := cmd.Flags().Changed("body")
			e, err := f.build(app, strings.Join(args, " "), bodySet, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return app.emit(cmd, f.output, e.Format())
		},
	}

	cfg := app.Config
	cmd.Flags().StringVarP(&f.todo, "todo", "t", cfg.DefaultTodo, "TODO keyword")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringVarP(&f.scheduled, "scheduled", "s", "", "schedule for YYYY-MM-DD or YYYY-MM-DD HH:MM")
	cmd.Flags().BoolVar(&f.today, "today", false, "schedule for today")
	cmd.Flags().StringArrayVarP(&f.props, "prop", "p", nil, "property NAME=VALUE (repeatable)")
	cmd.Flags().StringVarP(&f.body, "body", "b", "", "body text")
	cmd.Flags().BoolVar(&f.bodyStdin, "body-stdin", false, "read the body from stdin")
	cmd.Flags().IntVarP(&f.level, "level", "l", cfg.DefaultLevel, "heading level")
	cmd.Flags().BoolVar(&f.created, "created", cfg.AddCreated, "add a CREATED property")
	cmd.Flags().BoolVar(&f.assignID, "id", cfg.AssignIDs, "add an ID property")
	f.output.register(cmd, cfg.InboxFile)

	cmd.MarkFlagsMutuallyExclusive("scheduled", "today")
	cmd.MarkFlagsMutuallyExclusive("body", "body-stdin")

	return cmd
}

func (f *entryFlags) build(app *App, heading string, bodySet bool, stdin io.Reader) (org.Entry, error) {
	if f.level < 0 {
		return org.Entry{}, fmt.Errorf("level must not be negative, got %d", f.level)
	}

	e := org.Entry{
		Heading: heading,
		Todo:    f.todo,
		Tags:    f.tags,
		Level:   f.level,
	}

	switch {
	case f.today:
		e.Scheduled = org.ScheduledToday(app.Clock)
	case f.scheduled != "":
		ts, err := outline.ParseTimestamp(f.scheduled)
		if err != nil {
			return org.Entry{}, err
		}
		e.Scheduled = ts
	}

	props, err := parseProperties(f.props)
	if err != nil {
		return org.Entry{}, err
	}
	opts := outline.Options{AssignIDs: f.assignID}
	if f.created {
		opts.Created = app.Clock
	}
	e.Properties = outline.Decorate(props, opts)

	switch {
	case f.bodyStdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return org.Entry{}, fmt.Errorf("failed to read body: %w", err)
		}
		e.Body = org.Text(string(data))
	case bodySet:
		e.Body = org.Text(f.body)
	}

	return e, nil
}

// parseProperties turns NAME=VALUE pairs into properties, keeping their order
func parseProperties(pairs []string) ([]org.Property, error) {
	var props []org.Property
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.ContainsAny(name, " \t:") {
			return nil, fmt.Errorf("invalid property '%s': expected NAME=VALUE", pair)
		}
		props = append(props, org.Property{Name: name, Value: value})
	}
	return props, nil
}
