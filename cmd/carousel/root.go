package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/carouselkit/carousel/internal/config"
	"github.com/carouselkit/carousel/internal/events"
	"github.com/carouselkit/carousel/internal/logger"
	"github.com/carouselkit/carousel/internal/tui"
	"github.com/carouselkit/carousel/internal/watch"
)

type rootFlags struct {
	verbose bool
	watch   bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "carousel <deck>",
		Short:         "Carousel presents a slide deck as an interactive terminal widget",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
				if err != nil {
					return fmt.Errorf("failed to create logger: %w", err)
				}
				log = verbose
			}
			return runCarousel(args[0], flags, log)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flags.watch, "watch", true, "Reload the deck when the file changes")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runCarousel(path string, flags *rootFlags, log *logger.Logger) error {
	deck, err := config.ParseDeck(path)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Logger:    log.Component("tui"),
		Publisher: events.NewPublisher(log.Component("events")),
		Width:     terminalWidth(),
	}

	if flags.watch {
		watcher, err := watch.New(path, log.Component("watch"))
		if err != nil {
			return err
		}
		defer watcher.Close()
		opts.Watcher = watcher
	}

	log.WithFields(map[string]any{"deck": deck.Name, "slides": len(deck.Slides)}).Info("launching carousel")

	m := tui.NewModel(deck, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run carousel: %w", err)
	}

	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
