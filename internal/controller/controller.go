package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/omarshaarawi/fplboard/internal/api/fpl"
	"github.com/omarshaarawi/fplboard/internal/render"
)

type State int

const (
	Idle State = iota
	Loading
	IdleWithError
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case IdleWithError:
		return "idle-with-error"
	default:
		return "unknown"
	}
}

const (
	LoadingLabel   = "Loading..."
	GenericFailure = "Something went wrong. Please try again."
)

// ErrBusy is returned when the trigger control is disabled by an action
// that is still in flight.
var ErrBusy = errors.New("action already in progress")

// Alerter surfaces a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

type AlerterFunc func(message string)

func (f AlerterFunc) Alert(message string) {
	f(message)
}

// feature is the shared fetch-transform-render cycle behind every board
// feature: one trigger control, one state, one error path.
type feature struct {
	name    string
	page    *render.Page
	alerter Alerter
	trigger string
	label   string

	mu    sync.Mutex
	state State
}

func newFeature(name string, page *render.Page, alerter Alerter, trigger string) *feature {
	return &feature{
		name:    name,
		page:    page,
		alerter: alerter,
		trigger: trigger,
		label:   page.Text(trigger),
	}
}

func (f *feature) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *feature) setState(s State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = s
}

// reject reports malformed input. The feature's state is left as is.
func (f *feature) reject(err error) error {
	slog.Info("Rejected input", "feature", f.name, "error", err)
	f.alerter.Alert(err.Error())
	return err
}

// run executes work with the trigger disabled. On failure the view is reset
// through clear and the user is alerted. The trigger is always restored.
func (f *feature) run(ctx context.Context, work func(ctx context.Context) error, clear func() error) error {
	f.mu.Lock()
	if f.page.Disabled(f.trigger) {
		f.mu.Unlock()
		return ErrBusy
	}
	f.state = Loading
	err := f.page.SetDisabled(f.trigger, true)
	f.mu.Unlock()
	if err != nil {
		slog.Error("Error disabling control", "feature", f.name, "error", err)
	}

	if err := f.page.SetText(f.trigger, LoadingLabel); err != nil {
		slog.Error("Error relabelling control", "feature", f.name, "error", err)
	}

	defer func() {
		if err := f.page.SetText(f.trigger, f.label); err != nil {
			slog.Error("Error restoring control label", "feature", f.name, "error", err)
		}
		if err := f.page.SetDisabled(f.trigger, false); err != nil {
			slog.Error("Error enabling control", "feature", f.name, "error", err)
		}
	}()

	if err := work(ctx); err != nil {
		f.setState(IdleWithError)
		slog.Error("Feature failed", "feature", f.name, "error", err)

		message := userMessage(err)
		if statusErr := f.page.SetStatus(message); statusErr != nil {
			slog.Error("Error writing status", "error", statusErr)
		}
		if clearErr := clear(); clearErr != nil {
			slog.Error("Error resetting view", "feature", f.name, "error", clearErr)
		}
		f.alerter.Alert(message)
		return err
	}

	f.setState(Idle)
	if err := f.page.SetStatus(""); err != nil {
		slog.Error("Error clearing status", "error", err)
	}
	return nil
}

func userMessage(err error) string {
	var fe *fpl.FetchError
	if errors.As(err, &fe) {
		return fe.UserMessage()
	}
	return GenericFailure
}
