package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/recap/internal/cli"
	"github.com/alexanderramin/recap/internal/config"
	"github.com/alexanderramin/recap/internal/db"
	"github.com/alexanderramin/recap/internal/llm"
	"github.com/alexanderramin/recap/internal/repository"
	"github.com/alexanderramin/recap/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.NoColor || !isTerminal() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	cacheRepo := repository.NewSQLiteInsightCacheRepo(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if v, _ := strconv.ParseBool(os.Getenv("RECAP_VERBOSE")); v {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	llmCfg := llm.LoadConfig()
	client := llm.NewDisabledClient()
	if llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOllamaClient(llmCfg, llmObserver)
	}

	app := &cli.App{
		Sessions: service.NewSessionService(sessionRepo, observer),
		Insights: service.NewInsightService(sessionRepo, cacheRepo, client, observer),
		Cache:    service.NewCacheService(cacheRepo, observer),
		Config:   cfg,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
