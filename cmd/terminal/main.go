package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	themeFlag := flag.String("theme", "", "UI theme (console, amber, light)")
	listThemes := flag.Bool("list-themes", false, "List all available themes")
	flag.Parse()

	if *listThemes {
		fmt.Println("Available themes:")
		for _, theme := range ListThemes() {
			fmt.Printf("  - %s\n", theme)
		}
		os.Exit(0)
	}

	selectedTheme := *themeFlag
	if selectedTheme == "" {
		selectedTheme = os.Getenv("PS_REVIEWER_THEME")
	}
	if selectedTheme == "" {
		selectedTheme = string(ThemeConsole)
	}
	if !slices.Contains(ListThemes(), ThemeName(selectedTheme)) {
		fmt.Printf("Invalid theme '%s'. Use --list-themes to see available options.\n", selectedTheme)
		os.Exit(1)
	}

	// The UI owns the terminal, so logs default to a file.
	if _, ok := os.LookupEnv("LOG_OUTPUT"); !ok {
		_ = os.Setenv("LOG_OUTPUT", "file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	m := initialModel(ctx, ThemeName(selectedTheme))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	stop()
	if m.cleanup != nil {
		m.cleanup()
	}
	if err != nil {
		slog.Error("error running program", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	slog.Info("terminal shut down successfully")
}
