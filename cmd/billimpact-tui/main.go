package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/billimpact/internal/calculation"
	"github.com/rgehrsitz/billimpact/internal/config"
	"github.com/rgehrsitz/billimpact/internal/domain"
	"github.com/rgehrsitz/billimpact/internal/tui"
)

func main() {
	// An optional form file prefills the wizard answers
	var form domain.FormData
	if len(os.Args) > 1 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		form = *loaded
	}

	ref, err := config.NewReferenceLoader().Load(os.Getenv("BILLIMPACT_REFERENCE"))
	if err != nil {
		fmt.Printf("Error loading reference data: %v\n", err)
		os.Exit(1)
	}
	engine := calculation.NewCalculationEngineWithConfig(ref)

	p := tea.NewProgram(
		tui.NewModel(engine, form),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
