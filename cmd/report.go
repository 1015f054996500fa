package cmd

import (
	"bytes"
	"fmt"
	"time"

	m "github.com/mouse-blink/prefix-by-date/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report FILE",
		Short: "View a previously saved batch report",
		Long:  "View the outcome of a batch saved with --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := reportStore.LoadJournal(m.Path(args[0]))
			if err != nil {
				return err
			}

			printJournal(cmd, journal)

			return nil
		},
	}

	return cmd
}

func printJournal(cmd *cobra.Command, journal m.Journal) {
	out := cmd.OutOrStdout()

	status := "completed"
	if journal.Aborted {
		status = "aborted"
	}

	_, _ = fmt.Fprintf(out, "Batch %s (%s)\n", journal.BatchID, status)
	_, _ = fmt.Fprintf(out, "Started %s, took %s\n",
		journal.StartedAt.Format(time.RFC3339),
		journal.FinishedAt.Sub(journal.StartedAt).Round(time.Millisecond),
	)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Outcome", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, r := range journal.Reports {
		detail := string(r.NewPath)
		if r.Error != "" {
			detail = r.Error
		}

		table.Append([]string{string(r.Path), string(r.Outcome), detail})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", journal.Total),
		fmt.Sprintf("Renamed %d", journal.Count(m.OutcomeRenamed)),
		fmt.Sprintf("Failed %d", journal.Count(m.OutcomeFailed)),
	})

	table.Render()
	_, _ = fmt.Fprintf(out, "\n%s", tableBuffer.String())
}
