package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const (
	datesPrompt = "Date(s) to reserve (press return for none)"
	dateLabel   = "Mon 02 Jan"
	hourLabel   = "03:04 PM"
)

type Dependencies struct {
	Settings  ports.SettingsRepository
	Secrets   ports.SecretStore
	Identity  ports.IdentityProvider
	Workplace ports.Workplace
	Prompter  ports.Prompter
	Grid      ports.GridRenderer
	FloorPlan ports.FloorPlanRenderer
	Clock     ports.Clock
	Waiter    ports.Waiter
	Out       io.Writer
	Logger    *slog.Logger
	Retry     domain.RetryPolicy
}

// Workflow is one interactive run: resolve tasks, show the calendar and book days.
type Workflow struct {
	deps Dependencies
}

func NewWorkflow(deps Dependencies) *Workflow {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Retry.MaxAttempts == 0 {
		deps.Retry = domain.DefaultRetryPolicy
	}

	return &Workflow{deps: deps}
}

// Reset removes the stored settings so the next run asks for them again.
func (w *Workflow) Reset(ctx context.Context) error {
	if err := w.deps.Settings.Delete(ctx); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}

func (w *Workflow) Run(ctx context.Context) error {
	settings, sessions, err := w.settings(ctx)
	if err != nil {
		return err
	}

	d := w.deps
	desks := NewDeskSelector(settings.PreferredSpaceID, d.Prompter, d.FloorPlan, d.Out, d.Logger)
	resolver := NewTaskResolver(sessions, d.Workplace, d.Prompter, desks, d.Out, d.Logger)
	calendar := NewCalendarService(sessions, d.Workplace, d.Out, d.Logger)
	submitter := NewReservationSubmitter(sessions, d.Workplace, resolver, d.Clock, d.Waiter, d.Out, d.Logger)

	today := domain.DateOf(d.Clock.Now())
	view, err := calendar.Load(ctx, today)
	if err != nil {
		return err
	}
	resolver.Follow(view.FollowedNames())

	pending, err := withSession(ctx, sessions, func(token string) ([]string, error) {
		return d.Workplace.PendingTasks(ctx, token)
	})
	if err != nil {
		return fmt.Errorf("get pending tasks: %w", err)
	}
	spaces, err := resolver.Resolve(ctx, pending)
	if err != nil {
		return err
	}

	grid := domain.Reconcile(view.Fortnight, view.Self, view.Followed, today, spaces)
	if err := w.printGrid(grid); err != nil {
		return err
	}
	if len(grid.Candidates) == 0 {
		return nil
	}

	location, err := w.chooseLocation(ctx, sessions)
	if err != nil {
		return err
	}
	dates, err := w.pickDates(ctx, grid.Candidates)
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		fmt.Fprintln(d.Out, "No reservations added.")
		return nil
	}

	needsPoll, err := submitter.Submit(ctx, location, dates, settings.StartHour, settings.EndHour)
	if err != nil {
		return err
	}

	booked, err := calendar.Booked(ctx, view.Fortnight)
	if err != nil {
		return err
	}
	if err := w.printGrid(domain.Reconcile(view.Fortnight, booked, nil, today, nil)); err != nil {
		return err
	}

	if needsPoll {
		if _, err := submitter.Converge(ctx, d.Retry); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workflow) newSessions(identity string) *SessionManager {
	return NewSessionManager(identity, w.deps.Identity, w.deps.Secrets, w.deps.Prompter, w.deps.Out, w.deps.Logger)
}

// settings loads the stored settings or collects new ones. New settings are only
// saved after a successful login with them.
func (w *Workflow) settings(ctx context.Context) (domain.Settings, *SessionManager, error) {
	settings, err := w.deps.Settings.Load(ctx)
	if err == nil {
		return settings, w.newSessions(settings.Identity), nil
	}
	if !errors.Is(err, domain.ErrSettingsOutdated) {
		return domain.Settings{}, nil, fmt.Errorf("load settings: %w", err)
	}
	w.deps.Logger.DebugContext(ctx, "collecting settings", "reason", err)

	settings, err = w.collectSettings(ctx)
	if err != nil {
		return domain.Settings{}, nil, fmt.Errorf("collect settings: %w", err)
	}

	sessions := w.newSessions(settings.Identity)
	if err := sessions.Forget(ctx); err != nil {
		return domain.Settings{}, nil, fmt.Errorf("forget stored secrets: %w", err)
	}
	if _, err := sessions.Obtain(ctx, false); err != nil {
		return domain.Settings{}, nil, err
	}
	if err := w.deps.Settings.Save(ctx, settings); err != nil {
		return domain.Settings{}, nil, fmt.Errorf("save settings: %w", err)
	}
	return settings, sessions, nil
}

func (w *Workflow) collectSettings(ctx context.Context) (domain.Settings, error) {
	p := w.deps.Prompter

	var identity string
	for identity == "" {
		answer, err := p.Text(ctx, ports.TextPrompt{Message: "Email"})
		if err != nil {
			return domain.Settings{}, err
		}
		identity = strings.TrimSpace(answer)
	}

	preferred, err := p.Text(ctx, ports.TextPrompt{Message: preferredPrompt})
	if err != nil {
		return domain.Settings{}, err
	}

	startHour, err := w.askHour(ctx, "Start of Day (for reservations)", domain.DefaultStartHour)
	if err != nil {
		return domain.Settings{}, err
	}
	endHour, err := w.askHour(ctx, "End of Day (for reservations)", domain.DefaultEndHour)
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		Version:          domain.CurrentSettingsVersion,
		Identity:         identity,
		PreferredSpaceID: strings.TrimSpace(preferred),
		StartHour:        startHour,
		EndHour:          endHour,
	}, nil
}

func (w *Workflow) askHour(ctx context.Context, message string, def int) (int, error) {
	options := make([]ports.Option, 0, 24)
	for hour := 0; hour < 24; hour++ {
		options = append(options, ports.Option{
			Label: time.Date(2000, time.January, 1, hour, 0, 0, 0, time.UTC).Format(hourLabel),
			Value: strconv.Itoa(hour),
		})
	}

	value, err := choose(ctx, w.deps.Prompter, w.deps.Out, ports.SelectPrompt{
		Message: message,
		Options: options,
		Default: strconv.Itoa(def),
	})
	if err != nil {
		return 0, err
	}
	hour, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse hour %q: %w", value, err)
	}
	return hour, nil
}

func (w *Workflow) chooseLocation(ctx context.Context, sessions *SessionManager) (domain.Location, error) {
	locations, err := withSession(ctx, sessions, func(token string) ([]domain.Location, error) {
		return w.deps.Workplace.Locations(ctx, token)
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("get locations: %w", err)
	}

	byID := make(map[string]domain.Location, len(locations))
	options := make([]ports.Option, 0, len(locations))
	for _, location := range locations {
		byID[location.ID] = location
		options = append(options, ports.Option{Label: location.Name, Value: location.ID})
	}

	id, err := choose(ctx, w.deps.Prompter, w.deps.Out, ports.SelectPrompt{Message: "Office", Options: options})
	if err != nil {
		return domain.Location{}, err
	}
	return byID[id], nil
}

func (w *Workflow) pickDates(ctx context.Context, candidates []domain.Date) ([]domain.Date, error) {
	byValue := make(map[string]domain.Date, len(candidates))
	options := make([]ports.Option, 0, len(candidates))
	for _, day := range candidates {
		byValue[day.String()] = day
		options = append(options, ports.Option{Label: day.Format(dateLabel), Value: day.String()})
	}

	values, err := w.deps.Prompter.MultiSelect(ctx, ports.MultiSelectPrompt{Message: datesPrompt, Options: options})
	if err != nil {
		if errors.Is(err, domain.ErrPromptAborted) {
			return nil, nil
		}
		return nil, fmt.Errorf("pick dates: %w", err)
	}

	dates := make([]domain.Date, 0, len(values))
	for _, value := range values {
		if day, ok := byValue[value]; ok {
			dates = append(dates, day)
		}
	}
	return dates, nil
}

func (w *Workflow) printGrid(grid domain.Grid) error {
	rendered, err := w.deps.Grid.RenderGrid(grid)
	if err != nil {
		return fmt.Errorf("render calendar: %w", err)
	}
	fmt.Fprintln(w.deps.Out, rendered)
	return nil
}
