package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/recap/internal/cli/formatter"
	"github.com/alexanderramin/recap/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage focus sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var activity, description, startFlag string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a focus session",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().Add(-time.Duration(minutes) * time.Minute)
			if startFlag != "" {
				parsed, err := time.ParseInLocation("2006-01-02 15:04", startFlag, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --start %q, expected YYYY-MM-DD HH:MM", startFlag)
				}
				start = parsed
			}

			s := &domain.SessionRecord{
				ActivityType: activity,
				Duration:     minutes * 60,
				StartTime:    start,
				EndTime:      start.Add(time.Duration(minutes) * time.Minute),
				Description:  description,
			}
			if err := app.Sessions.Log(context.Background(), s); err != nil {
				return err
			}

			fmt.Printf("Logged %s session of %s (#%d)\n",
				activity, formatter.FormatSeconds(s.Duration), s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&activity, "activity", "", "Activity type, e.g. coding")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session duration in minutes")
	cmd.Flags().StringVar(&description, "note", "", "Free-text description")
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time (YYYY-MM-DD HH:MM), defaults to now minus duration")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent focus sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListRecent(context.Background(), days)
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}

			headers := []string{"ID", "ACTIVITY", "STARTED", "DURATION", "NOTE"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				rows = append(rows, []string{
					fmt.Sprintf("%d", s.ID),
					s.ActivityType,
					formatter.HumanTimestamp(s.StartTime),
					formatter.FormatSeconds(s.Duration),
					formatter.Dim(formatter.Truncate(s.Description, 40)),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Number of recent days to show")

	return cmd
}
