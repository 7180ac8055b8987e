package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/VoidMesh/terragen/cmd/preview/models"
	"github.com/VoidMesh/terragen/internal/config"
	"github.com/VoidMesh/terragen/internal/db"
	"github.com/VoidMesh/terragen/internal/logging"
	"github.com/VoidMesh/terragen/internal/terrain"
)

func main() {
	dbPath := flag.String("db", "", "Path to a terrain database; enables the library view")
	presetsPath := flag.String("presets", "", "YAML file with extra presets")
	preset := flag.String("preset", config.DefaultPresetName, "Preset to start from")
	startView := flag.String("view", "preview", "Starting view (menu, preview, stats, library)")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// The TUI owns the terminal, so logs go to a file or nowhere.
	logging.Setup(logging.Options{Level: *logLevel, Format: "logfmt", Prefix: "[terragen-preview] "})
	logging.GetLogger().SetOutput(io.Discard)
	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
		logging.GetLogger().SetOutput(f)
	}
	logger := logging.GetLogger()

	presets, err := config.LoadPresets(*presetsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load presets:", err)
		os.Exit(1)
	}

	generator := terrain.NewGeneratorWithDefaultLogger()

	var manager *terrain.Manager
	if *dbPath != "" {
		database, err := sql.Open("sqlite3", *dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to open database:", err)
			os.Exit(1)
		}
		defer database.Close()

		database.SetMaxOpenConns(1)
		if err := db.Migrate(database); err != nil {
			fmt.Fprintln(os.Stderr, "failed to migrate database:", err)
			os.Exit(1)
		}
		manager = terrain.NewManager(database, generator, terrain.NewDefaultLoggerWrapper())
	}

	app := models.NewApp(generator, manager, presets, *preset, *startView)
	program := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("Starting terragen preview", "db_path", *dbPath, "preset", *preset, "start_view", *startView)

	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error running preview:", err)
		os.Exit(1)
	}
}
