package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

// TaskResolver drives outstanding tasks to completion.
type TaskResolver struct {
	sessions  *SessionManager
	workplace ports.Workplace
	prompter  ports.Prompter
	desks     *DeskSelector
	out       io.Writer
	logger    *slog.Logger
	followed  map[string]bool
}

func NewTaskResolver(sessions *SessionManager, workplace ports.Workplace, prompter ports.Prompter, desks *DeskSelector, out io.Writer, logger *slog.Logger) *TaskResolver {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &TaskResolver{
		sessions:  sessions,
		workplace: workplace,
		prompter:  prompter,
		desks:     desks,
		out:       out,
		logger:    logger,
	}
}

// Follow sets the coworkers whose desks are highlighted during selection.
func (r *TaskResolver) Follow(names map[string]bool) {
	r.followed = names
}

// Resolve processes each task in order and returns the latest known desk labels
// keyed by display name. Unsupported tasks are skipped with a warning.
func (r *TaskResolver) Resolve(ctx context.Context, taskIDs []string) (map[string]string, error) {
	spaces := map[string]string{}
	for _, taskID := range taskIDs {
		resolved, err := r.resolve(ctx, taskID)
		if err != nil {
			var unsupported *domain.UnsupportedTaskError
			if errors.As(err, &unsupported) {
				r.logger.WarnContext(ctx, "task skipped", "task", taskID, "reason", unsupported.Reason)
				fmt.Fprintf(r.out, "Skipping task: %v\n", err)
				continue
			}
			return nil, fmt.Errorf("resolve task %s: %w", taskID, err)
		}
		if resolved != nil {
			spaces = resolved
		}
	}
	return spaces, nil
}

func (r *TaskResolver) resolve(ctx context.Context, taskID string) (map[string]string, error) {
	task, err := withSession(ctx, r.sessions, func(token string) (domain.Task, error) {
		return r.workplace.Task(ctx, token, taskID)
	})
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	fmt.Fprintf(r.out, "%s:\n\n\t%s\n\n", task.Title, task.Card.Summary())
	r.logger.DebugContext(ctx, "task fetched", "task", task.ID, "kind", task.Kind.String())

	if task.Kind == domain.TaskInformational {
		if !task.Booking.Complete() {
			return nil, nil
		}
		booked, err := r.spaces(ctx, task, domain.Booked, task.Booking.FloorID)
		if err != nil {
			return nil, err
		}
		return domain.OccupancyMap(booked, task.Booking.SpaceID), nil
	}

	complete, err := r.prompter.Confirm(ctx, ports.ConfirmPrompt{Message: "Complete task?", Default: true})
	if err != nil {
		if errors.Is(err, domain.ErrPromptAborted) {
			return nil, nil
		}
		return nil, fmt.Errorf("confirm task: %w", err)
	}
	if !complete {
		return nil, nil
	}

	if err := task.Questionnaire.Validate(task.ID); err != nil {
		return nil, err
	}

	answers := make([]domain.Answer, 0, len(task.Questionnaire.Questions))
	for _, question := range task.Questionnaire.Questions {
		options := make([]ports.Option, 0, len(question.Choices))
		for _, c := range question.Choices {
			options = append(options, ports.Option{Label: c.Label, Value: c.ID})
		}
		choiceID, err := choose(ctx, r.prompter, r.out, ports.SelectPrompt{Message: question.Title, Options: options})
		if err != nil {
			return nil, err
		}
		answers = append(answers, domain.Answer{QuestionID: question.ID, ChoiceID: choiceID})
	}

	err = doWithSession(ctx, r.sessions, func(token string) error {
		return r.workplace.RespondToTask(ctx, token, task.ID, answers)
	})
	if err != nil {
		return nil, fmt.Errorf("respond to task: %w", err)
	}

	if !task.SpaceBooking {
		return nil, nil
	}
	return r.bookSpace(ctx, task)
}

func (r *TaskResolver) bookSpace(ctx context.Context, task domain.Task) (map[string]string, error) {
	floors, err := withSession(ctx, r.sessions, func(token string) ([]domain.Floor, error) {
		return r.workplace.Floors(ctx, token, task.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("get floors: %w", err)
	}

	byID := make(map[string]domain.Floor, len(floors))
	options := make([]ports.Option, 0, len(floors))
	for _, floor := range floors {
		if !floor.Active {
			continue
		}
		byID[floor.ID] = floor
		options = append(options, ports.Option{Label: floor.Name, Value: floor.ID})
	}
	floorID, err := choose(ctx, r.prompter, r.out, ports.SelectPrompt{Message: "Floor", Options: options})
	if err != nil {
		return nil, err
	}
	floor := byID[floorID]

	available, err := r.spaces(ctx, task, domain.Available, floor.ID)
	if err != nil {
		return nil, err
	}
	preferredID, err := r.desks.PreferredID(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := r.spaces(ctx, task, domain.Booked, floor.ID)
	if err != nil {
		return nil, err
	}

	spaceID, err := r.desks.Choose(ctx, ChooseRequest{
		Floor:       floor,
		Available:   available,
		Booked:      booked,
		PreferredID: preferredID,
		Followed:    r.followed,
	})
	if err != nil {
		return nil, err
	}

	label, err := withSession(ctx, r.sessions, func(token string) (string, error) {
		return r.workplace.ReserveSpace(ctx, token, ports.SpaceReservation{
			TaskID:        task.ID,
			SpaceID:       spaceID,
			StartTime:     task.Booking.StartTime,
			EndTime:       task.Booking.EndTime,
			UserID:        task.Booking.RecipientID,
			ReservationID: task.Booking.ReservationID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reserve space: %w", err)
	}
	fmt.Fprintf(r.out, "You have booked '%s'\n", label)

	spaces := domain.OccupancyMap(booked, "")
	spaces[domain.YouName] = label
	return spaces, nil
}

func (r *TaskResolver) spaces(ctx context.Context, task domain.Task, availability domain.Availability, floorID string) ([]domain.Space, error) {
	spaces, err := withSession(ctx, r.sessions, func(token string) ([]domain.Space, error) {
		return r.workplace.Spaces(ctx, token, ports.SpaceQuery{
			Availability: availability,
			TaskID:       task.ID,
			FloorID:      floorID,
			StartTime:    task.Booking.StartTime,
			EndTime:      task.Booking.EndTime,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("get spaces: %w", err)
	}
	return spaces, nil
}
