package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"snoot/internal/driver"
	"snoot/internal/ui"
)

type diagnoseOutcome struct {
	result *driver.DiagnoseResult
	err    error
}

// runDiagnoseWithUI runs the driver in the background while a Bubble Tea
// program shows per-file progress on stderr.
func runDiagnoseWithUI(ctx context.Context, title, path string, opts driver.Options) (*driver.DiagnoseResult, error) {
	events := make(chan driver.Event, 256)
	stop := make(chan struct{})
	outcomeCh := make(chan diagnoseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events, Done: stop}
		res, err := driver.Diagnose(ctx, path, optsCopy)
		outcomeCh <- diagnoseOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше (q): дальше события не читаются
	close(stop)
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
