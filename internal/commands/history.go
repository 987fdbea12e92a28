package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gerunddev/orgwriter/internal/styles"
	"github.com/spf13/cobra"
)

// History summarizes the appends recorded in the log file
type History struct {
	Lines      []string
	LastAppend time.Time
	Appends    int
	Bytes      int
}

// ParseLogFile reads the last maxLines lines of the log file and collects
// the "entry appended" records among them
func ParseLogFile(logPath string, maxLines int) (*History, error) {
	content, err := os.ReadFile(logPath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	h := &History{}
	for _, line := range lines {
		if !strings.Contains(line, "entry appended") {
			continue
		}
		h.Lines = append(h.Lines, line)
		h.Appends++

		// Format: 2025-11-27 14:11:57 INFO entry appended file=... bytes=42
		if len(line) > 19 {
			if t, err := time.Parse(time.DateTime, line[:19]); err == nil {
				h.LastAppend = t
			}
		}

		if idx := strings.Index(line, "bytes="); idx != -1 {
			var n int
			if _, err := fmt.Sscanf(line[idx:], "bytes=%d", &n); err == nil {
				h.Bytes += n
			}
		}
	}

	return h, nil
}

func newHistoryCmd(app *App) *cobra.Command {
	var maxLines int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent appends from the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			h, err := ParseLogFile(app.Config.LogFile, maxLines)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Fprintln(w, styles.DimStyle.Render("No appends recorded yet"))
					return nil
				}
				return fmt.Errorf("failed to read log file: %w", err)
			}

			for _, line := range h.Lines {
				fmt.Fprintln(w, styles.DimStyle.Render(line))
			}
			if h.Appends == 0 {
				fmt.Fprintln(w, styles.DimStyle.Render("No appends recorded yet"))
				return nil
			}

			fmt.Fprintln(w, styles.KeyValue("appends", h.Appends))
			fmt.Fprintln(w, styles.KeyValue("bytes", h.Bytes))
			fmt.Fprintln(w, styles.KeyValue("last append", h.LastAppend.Format(time.DateTime)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxLines, "lines", "n", 200, "number of log lines to scan")

	return cmd
}
