package sequoia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuzawa-san/wawona/internal/domain"
)

// wireID accepts identifiers the backend sends either as strings or as numbers.
type wireID string

func (id *wireID) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		*id = ""
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*id = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("identifier %s: %w", raw, err)
	}
	*id = wireID(n.String())
	return nil
}

type verifyIdentityRequest struct {
	Email string `json:"email"`
}

type loginRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	BrowserHash string `json:"browserHash"`
	UserType    string `json:"userType"`
}

type loginData struct {
	UserDetails struct {
		APIToken   string `json:"apiToken"`
		OktaStatus string `json:"oktaStatus"`
	} `json:"userDetails"`
	Factors []struct {
		FactorType string `json:"factorType"`
		Profile    struct {
			PhoneNumber string `json:"phoneNumber"`
		} `json:"profile"`
	} `json:"factors"`
}

type verifyMFARequest struct {
	PassCode    string `json:"passCode"`
	BrowserHash string `json:"browserHash"`
}

type locationsData struct {
	Locations []struct {
		LocationID       wireID `json:"locationId"`
		LocationName     string `json:"locationName"`
		LocationTimezone string `json:"locationTimezone"`
	} `json:"locations"`
}

type pendingTasksData struct {
	Tasks []struct {
		TaskID wireID `json:"taskId"`
	} `json:"tasks"`
}

type taskData struct {
	TaskID               wireID `json:"taskId"`
	TaskTitle            string `json:"taskTitle"`
	FloorID              wireID `json:"floorId"`
	SpaceID              wireID `json:"spaceId"`
	ReservationStartTime string `json:"reservationStartTime"`
	ReservationEndTime   string `json:"reservationEndTime"`
	SpaceBookingEnabled  bool   `json:"spaceBookingEnabled"`
	RecipientID          wireID `json:"recipientId"`
	ReservationID        wireID `json:"reservationId"`
	TaskMetadata         struct {
		Data     json.RawMessage `json:"data"`
		CardInfo struct {
			DisplayTitle  string `json:"displayTitle"`
			Title         string `json:"title"`
			Heading       string `json:"heading"`
			BasicSubtitle string `json:"basicSubtitle"`
			Caption       string `json:"caption"`
		} `json:"cardInfo"`
	} `json:"taskMetadata"`
}

type questionnaireData struct {
	HasQuestionnaire bool `json:"hasQuestionnaire"`
	HasDocumentAck   bool `json:"hasDocumentAck"`
	Questions        []struct {
		QuestionID       wireID `json:"questionId"`
		QuestionTitle    string `json:"questionTitle"`
		AnswerType       string `json:"answerType"`
		QuestionCategory string `json:"questionCategory"`
		Choices          []struct {
			ChoiceID    wireID `json:"choiceId"`
			ChoiceLabel string `json:"choiceLabel"`
			ChoiceType  string `json:"choiceType"`
		} `json:"choices"`
	} `json:"questions"`
}

type taskResponseRequest struct {
	TaskID   string        `json:"taskId"`
	Response []answerEntry `json:"response"`
}

type answerEntry struct {
	QuestionID string `json:"questionId"`
	ChoiceID   string `json:"choice_id"`
}

type floorsData struct {
	Floors []struct {
		FloorID      wireID `json:"floorId"`
		FloorName    string `json:"floorName"`
		Status       string `json:"status"`
		BlueprintURL string `json:"blueprintUrl"`
	} `json:"floors"`
}

type spacesData struct {
	Spaces []spaceEntry `json:"spaces"`
}

type spaceEntry struct {
	UniqueSpaceID wireID   `json:"uniqueSpaceId"`
	SpaceID       wireID   `json:"spaceId"`
	Label         string   `json:"label"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	XCoordinate   *float64 `json:"xCoordinate"`
	YCoordinate   *float64 `json:"yCoordinate"`
}

type reserveSpaceRequest struct {
	TaskID        string `json:"taskId"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	SpaceID       string `json:"spaceId"`
	UserID        string `json:"userId"`
	ReservationID string `json:"reservationId"`
}

type reserveSpaceData struct {
	Label string `json:"label"`
}

type reservationsRequest struct {
	ReservationType string             `json:"reservationType"`
	LocationID      string             `json:"locationId"`
	Reservations    []reservationEntry `json:"reservations"`
}

type reservationEntry struct {
	StartTimeUTC string `json:"startTimeUtc"`
	EndTimeUTC   string `json:"endTimeUtc"`
	IsPrivate    bool   `json:"isPrivate"`
}

type summaryData struct {
	WeeklyStats []struct {
		Date string `json:"date"`
	} `json:"weeklyStats"`
}

type followingsData struct {
	Followings []struct {
		FullName             string `json:"fullName"`
		ReservationsMetadata []struct {
			ReservationStartTime string `json:"reservationStartTime"`
		} `json:"reservationsMetadata"`
	} `json:"followings"`
}

// populatedObject reports whether raw is a JSON object with at least one member.
// Malformed objects count as populated so that decoding reports them.
func populatedObject(raw []byte) bool {
	if len(raw) == 0 || raw[0] != '{' {
		return false
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return true
	}
	return len(members) > 0
}

// toDomain resolves the task variant: a task whose data payload is empty, null,
// or anything other than a populated object is informational.
func (t taskData) toDomain() (domain.Task, error) {
	card := t.TaskMetadata.CardInfo
	task := domain.Task{
		ID:    string(t.TaskID),
		Title: t.TaskTitle,
		Card: domain.Card{
			DisplayTitle:  card.DisplayTitle,
			Title:         card.Title,
			Heading:       card.Heading,
			BasicSubtitle: card.BasicSubtitle,
			Caption:       card.Caption,
		},
		Kind:         domain.TaskInformational,
		SpaceBooking: t.SpaceBookingEnabled,
		Booking: domain.BookingWindow{
			FloorID:       string(t.FloorID),
			SpaceID:       string(t.SpaceID),
			StartTime:     t.ReservationStartTime,
			EndTime:       t.ReservationEndTime,
			RecipientID:   string(t.RecipientID),
			ReservationID: string(t.ReservationID),
		},
	}

	raw := bytes.TrimSpace(t.TaskMetadata.Data)
	if !populatedObject(raw) {
		return task, nil
	}
	var data questionnaireData
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.Task{}, fmt.Errorf("decode task %s questionnaire: %w", task.ID, err)
	}
	task.Kind = domain.TaskActionable
	questionnaire := &domain.Questionnaire{
		HasQuestionnaire: data.HasQuestionnaire,
		HasDocumentAck:   data.HasDocumentAck,
	}
	for _, q := range data.Questions {
		question := domain.Question{
			ID:         string(q.QuestionID),
			Title:      strings.TrimSpace(q.QuestionTitle),
			AnswerType: q.AnswerType,
			Category:   q.QuestionCategory,
		}
		for _, c := range q.Choices {
			question.Choices = append(question.Choices, domain.Choice{
				ID:    string(c.ChoiceID),
				Label: c.ChoiceLabel,
				Type:  c.ChoiceType,
			})
		}
		questionnaire.Questions = append(questionnaire.Questions, question)
	}
	task.Questionnaire = questionnaire
	return task, nil
}

func (s spaceEntry) toDomain(availability domain.Availability) domain.Space {
	space := domain.Space{
		UniqueID:     string(s.UniqueSpaceID),
		SpaceID:      string(s.SpaceID),
		Label:        s.Label,
		Occupant:     strings.TrimSpace(s.FirstName + " " + s.LastName),
		Availability: availability,
	}
	if s.XCoordinate != nil && s.YCoordinate != nil {
		space.Coordinates = &domain.Point{X: *s.XCoordinate, Y: *s.YCoordinate}
	}
	return space
}
