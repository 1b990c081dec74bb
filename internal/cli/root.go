package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/recap/internal/config"
	"github.com/alexanderramin/recap/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Insights service.InsightService
	Cache    service.CacheService
	Config   *config.Config
}

// NewRootCmd creates the top-level "recap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "recap",
		Short: "Focus session tracker with cached LLM insights",
	}

	root.AddCommand(
		newSessionCmd(app),
		newInsightCmd(app),
		newStatsCmd(app),
		newCacheCmd(app),
	)

	return root
}
