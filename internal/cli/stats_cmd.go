package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/recap/internal/cli/formatter"
	"github.com/alexanderramin/recap/internal/domain"
)

func newStatsCmd(app *App) *cobra.Command {
	var dateFlag, period string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show aggregated statistics without generating text",
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			var window domain.Window
			switch period {
			case "day":
				window = domain.DayWindow(at)
			case "week":
				window = domain.WeekWindow(at)
			case "month":
				window = domain.MonthWindow(at)
			default:
				return fmt.Errorf("invalid --period %q, expected day, week or month", period)
			}

			summary, err := app.Sessions.Summarize(context.Background(), window)
			if err != nil {
				return err
			}

			if summary.TotalSessions == 0 {
				fmt.Printf("No sessions in %s.\n", window.Label)
				return nil
			}

			fmt.Print(formatter.RenderBox("Stats", formatter.RenderSummary(summary)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&period, "period", "week", "Aggregation period: day, week or month")

	return cmd
}
