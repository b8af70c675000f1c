package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"inkpad/internal/cli"
	"inkpad/internal/config"
	"inkpad/internal/logs"
	"inkpad/internal/media"
	"inkpad/internal/store"
	"inkpad/internal/tui"
)

func main() {
	// Parse CLI flags
	dirFlag := flag.String("dir", "", "Data directory")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{DataDir: *dirFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Ensure data and media directories exist
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Failed to create directories: %v", err)
	}

	// Reinitialize logger
	if err := logs.Initialize(cfg.DataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
	}
	defer logs.Close()

	st, err := store.Open(cfg.NotesFilePath())
	if err != nil {
		log.Fatalf("Failed to open note store: %v", err)
	}
	defer st.Close()

	// Check for CLI subcommands
	args := flag.Args()
	if len(args) > 0 {
		exitCode := cli.Run(args, st)
		st.Close()
		os.Exit(exitCode)
	}

	lib, err := media.NewLibrary(cfg.MediaDir)
	if err != nil {
		log.Fatalf("Failed to open media library: %v", err)
	}

	// TUI mode
	logs.Logger.Println("Starting app in TUI mode")
	appModel := tui.NewAppModel(cfg, st, lib)
	p := tea.NewProgram(appModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
	appModel.Close()
}
