package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"oxygen/internal/driver"
	"oxygen/internal/ui"
)

type checkOutcome struct {
	reports []driver.FileReport
	err     error
}

// runCheckWithUI runs CheckFiles behind a progress UI. The worker owns the
// event channel and closes it when the check finishes, which quits the UI.
func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.CheckOptions) ([]driver.FileReport, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		reports, err := driver.CheckFiles(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{reports: reports, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.reports, uiErr
	}
	return outcome.reports, outcome.err
}
