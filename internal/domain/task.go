package domain

import (
	"fmt"
	"strings"
)

type TaskKind int

const (
	// TaskInformational carries no machine-actionable payload.
	TaskInformational TaskKind = iota
	// TaskActionable carries a questionnaire and possibly a space booking.
	TaskActionable
)

func (k TaskKind) String() string {
	switch k {
	case TaskInformational:
		return "informational"
	case TaskActionable:
		return "actionable"
	default:
		return fmt.Sprintf("TaskKind(%d)", int(k))
	}
}

const (
	AnswerTypeSingleSelect = "SINGLE_SELECT"
	CategoryAllUsers       = "ALL_USERS"
	ChoiceTypeQualify      = "QUALIFY"
)

type Card struct {
	DisplayTitle  string
	Title         string
	Heading       string
	BasicSubtitle string
	Caption       string
}

// BookingWindow is the pre-assigned reservation a task refers to.
type BookingWindow struct {
	FloorID       string
	SpaceID       string
	StartTime     string
	EndTime       string
	RecipientID   string
	ReservationID string
}

// Complete reports whether the window is enough to look up desk occupancy.
func (w BookingWindow) Complete() bool {
	return w.FloorID != "" && w.StartTime != "" && w.EndTime != ""
}

type Choice struct {
	ID    string
	Label string
	Type  string
}

type Question struct {
	ID         string
	Title      string
	AnswerType string
	Category   string
	Choices    []Choice
}

type Questionnaire struct {
	HasQuestionnaire bool
	HasDocumentAck   bool
	Questions        []Question
}

type Answer struct {
	QuestionID string
	ChoiceID   string
}

// Task is resolved into a closed variant once at fetch time.
type Task struct {
	ID            string
	Title         string
	Card          Card
	Kind          TaskKind
	Questionnaire *Questionnaire
	SpaceBooking  bool
	Booking       BookingWindow
}

// Validate fails on the first unsupported shape so nothing is answered partially.
func (q *Questionnaire) Validate(taskID string) error {
	if q == nil || !q.HasQuestionnaire || len(q.Questions) == 0 {
		return &UnsupportedTaskError{TaskID: taskID, Reason: "task without questionnaire"}
	}
	if q.HasDocumentAck {
		return &UnsupportedTaskError{TaskID: taskID, Reason: "task with document acknowledgement"}
	}
	for _, question := range q.Questions {
		if question.AnswerType != AnswerTypeSingleSelect {
			return &UnsupportedTaskError{TaskID: taskID, Reason: fmt.Sprintf("question type %s", question.AnswerType)}
		}
		if question.Category != CategoryAllUsers {
			return &UnsupportedTaskError{TaskID: taskID, Reason: fmt.Sprintf("question category %s", question.Category)}
		}
		if len(question.Choices) == 0 {
			return &UnsupportedTaskError{TaskID: taskID, Reason: fmt.Sprintf("question %s missing choices", question.ID)}
		}
		for _, choice := range question.Choices {
			if choice.Type != ChoiceTypeQualify {
				return &UnsupportedTaskError{TaskID: taskID, Reason: fmt.Sprintf("choice type %s", choice.Type)}
			}
		}
	}
	return nil
}

func (c Card) Summary() string {
	head := strings.TrimSpace(strings.Join([]string{c.DisplayTitle, c.Title, c.Heading}, " "))
	lines := []string{head, c.BasicSubtitle, c.Caption}
	return strings.Join(lines, "\n\t")
}

type Floor struct {
	ID        string
	Name      string
	Active    bool
	Blueprint string
}
