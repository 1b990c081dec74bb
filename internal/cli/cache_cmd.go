package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/recap/internal/cli/formatter"
)

func newCacheCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and prune the insight cache",
	}

	cmd.AddCommand(
		newCacheListCmd(app),
		newCachePruneCmd(app),
	)

	return cmd
}

func newCacheListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Cache.List(context.Background())
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("Cache is empty.")
				return nil
			}

			headers := []string{"KIND", "WINDOW", "GENERATED", "HASH"}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					formatter.KindBadge(e.Kind),
					fmt.Sprintf("%s - %s",
						e.PeriodStart.Format("Jan 2"),
						e.PeriodEnd.Format("Jan 2, 2006")),
					formatter.HumanTimestamp(e.GeneratedAt),
					formatter.Dim(e.DataHash),
				})
			}

			fmt.Print(formatter.RenderBox("Insight cache", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newCachePruneCmd(app *App) *cobra.Command {
	var olderThan int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete cached insights for old windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan == 0 {
				olderThan = app.Config.CachePruneDays
			}
			cutoff := time.Now().AddDate(0, 0, -olderThan)

			n, err := app.Cache.PruneOlderThan(context.Background(), cutoff)
			if err != nil {
				return err
			}

			fmt.Printf("Pruned %d cached insight(s) older than %d days.\n", n, olderThan)
			return nil
		},
	}

	cmd.Flags().IntVar(&olderThan, "older-than", 0, "Age threshold in days (default from config)")

	return cmd
}
