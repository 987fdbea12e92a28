package commands

import (
	"fmt"

	"github.com/gerunddev/orgwriter/org"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "link URL TITLE",
		Short: "Format an org link",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var url, title string
			if len(args) > 0 {
				url = args[0]
			}
			if len(args) > 1 {
				title = args[1]
			}

			link, err := org.Link(url, title)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}
}
