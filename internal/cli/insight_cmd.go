package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/recap/internal/cli/formatter"
	"github.com/alexanderramin/recap/internal/domain"
	"github.com/alexanderramin/recap/internal/service"
)

func newInsightCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Generate or fetch cached insights",
	}

	cmd.AddCommand(
		newInsightKindCmd(app, domain.InsightDaily, "daily", "Insight for a single day"),
		newInsightKindCmd(app, domain.InsightWeekly, "weekly", "Insight for a Monday-start week"),
		newInsightKindCmd(app, domain.InsightMonthly, "monthly", "Insight for a calendar month"),
		newInsightActivityCmd(app),
	)

	return cmd
}

func newInsightKindCmd(app *App, kind domain.InsightKind, use, short string) *cobra.Command {
	var dateFlag string
	var regenerate bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			var window domain.Window
			switch kind {
			case domain.InsightWeekly:
				window = domain.WeekWindow(at)
			case domain.InsightMonthly:
				window = domain.MonthWindow(at)
			default:
				window = domain.DayWindow(at)
			}

			return runInsight(app, window, regenerate)
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "Force regeneration, bypassing the cache")

	return cmd
}

func newInsightActivityCmd(app *App) *cobra.Command {
	var days int
	var regenerate bool

	cmd := &cobra.Command{
		Use:   "activity NAME",
		Short: "Insight for one activity over recent days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if days == 0 {
				days = app.Config.ActivityWindowDays
			}
			window := domain.ActivityWindow(args[0], time.Now(), days)
			return runInsight(app, window, regenerate)
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Lookback in days (default from config)")
	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "Force regeneration, bypassing the cache")

	return cmd
}

func runInsight(app *App, window domain.Window, regenerate bool) error {
	ctx := context.Background()

	var result *service.InsightResult
	var err error
	if regenerate {
		result, err = app.Insights.Regenerate(ctx, window)
	} else {
		result, err = app.Insights.GetInsight(ctx, window)
	}
	if err != nil {
		return err
	}

	content := result.Text
	switch {
	case result.ServedStale:
		content += "\n\n" + formatter.Dim("(cached copy; the generator was unavailable)")
	case result.FromCache:
		content += "\n\n" + formatter.Dim(fmt.Sprintf("(cached %s)", formatter.HumanTimestamp(result.GeneratedAt)))
	}

	fmt.Print(formatter.RenderBox(window.Label, content))
	return nil
}

func resolveDate(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", flag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", flag)
	}
	return t, nil
}
