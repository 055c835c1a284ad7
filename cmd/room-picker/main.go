package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/romashorodok/room-directory/internal/directory"
	"github.com/romashorodok/room-directory/internal/locale"
	"github.com/romashorodok/room-directory/internal/tui"
	"github.com/romashorodok/room-directory/pkg/variables"
)

func main() {
	dir, err := directory.LoadFile(variables.Env(variables.ROOMS_CONFIG_PATH_NAME, variables.ROOMS_CONFIG_PATH_DEFAULT))
	if err != nil {
		log.Fatal(err)
	}

	bundle, err := locale.NewBundle(variables.Env(variables.DEFAULT_LANGUAGE_NAME, variables.DEFAULT_LANGUAGE_DEFAULT))
	if err != nil {
		log.Fatal(err)
	}

	// LANG looks like fr_FR.UTF-8
	lang := strings.ReplaceAll(strings.SplitN(os.Getenv("LANG"), ".", 2)[0], "_", "-")

	current := ""
	if len(os.Args) > 1 {
		current = os.Args[1]
	}

	model, err := tui.NewModel(tui.Params{
		Directory:   dir,
		Origin:      variables.Env(variables.NAVIGATE_ORIGIN_NAME, variables.NAVIGATE_ORIGIN_DEFAULT),
		CurrentRoom: current,
		Localize:    bundle.Translator(lang),
	})
	if err != nil {
		log.Fatal(err)
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatal(err)
	}

	if m, ok := final.(tui.Model); ok && m.Target() != "" {
		fmt.Println(m.Target())
	}
}
