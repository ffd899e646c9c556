package sequoia

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports"
)

const (
	locationsPath    = "/rtw/resv/client/locations"
	pendingTasksPath = "/rtw/client/pending-task"
	taskInfoPath     = "/rtw/client/task/info"
	taskResponsePath = "/rtw/client/task-response"
	floorsPath       = "/rtw/client/space-bookings/floors"
	spacesPathFormat = "/rtw/client/space-bookings/%s/spaces"
	reserveSpacePath = "/rtw/client/space-bookings/space"
	reservationsPath = "/rtw/resv/client/reservations"
	summaryPath      = "/rtw/client/dashboard/summary"
	followingsPath   = "/rtw/client/followings"

	floorStatusActive = "active"
)

var _ ports.Workplace = (*Client)(nil)
var _ ports.IdentityProvider = (*Client)(nil)

func tokenHeader(token string) map[string]string {
	return map[string]string{"Token": token}
}

func (c *Client) Locations(ctx context.Context, token string) ([]domain.Location, error) {
	var data locationsData
	if err := c.do(ctx, call{method: http.MethodGet, path: locationsPath, headers: tokenHeader(token)}, &data); err != nil {
		return nil, err
	}

	locations := make([]domain.Location, 0, len(data.Locations))
	for _, loc := range data.Locations {
		locations = append(locations, domain.Location{
			ID:       string(loc.LocationID),
			Name:     loc.LocationName,
			Timezone: loc.LocationTimezone,
		})
	}
	return locations, nil
}

func (c *Client) PendingTasks(ctx context.Context, token string) ([]string, error) {
	var data pendingTasksData
	if err := c.do(ctx, call{method: http.MethodGet, path: pendingTasksPath, headers: tokenHeader(token)}, &data); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(data.Tasks))
	for _, task := range data.Tasks {
		ids = append(ids, string(task.TaskID))
	}
	return ids, nil
}

func (c *Client) Task(ctx context.Context, token, taskID string) (domain.Task, error) {
	var data taskData
	err := c.do(ctx, call{
		method:  http.MethodGet,
		path:    taskInfoPath,
		query:   url.Values{"taskId": {taskID}},
		headers: tokenHeader(token),
	}, &data)
	if err != nil {
		return domain.Task{}, err
	}
	return data.toDomain()
}

func (c *Client) RespondToTask(ctx context.Context, token, taskID string, answers []domain.Answer) error {
	body := taskResponseRequest{TaskID: taskID, Response: make([]answerEntry, 0, len(answers))}
	for _, answer := range answers {
		body.Response = append(body.Response, answerEntry{QuestionID: answer.QuestionID, ChoiceID: answer.ChoiceID})
	}
	return c.do(ctx, call{method: http.MethodPost, path: taskResponsePath, headers: tokenHeader(token), body: body}, nil)
}

func (c *Client) Floors(ctx context.Context, token, taskID string) ([]domain.Floor, error) {
	var data floorsData
	err := c.do(ctx, call{
		method:  http.MethodGet,
		path:    floorsPath,
		query:   url.Values{"taskId": {taskID}},
		headers: tokenHeader(token),
	}, &data)
	if err != nil {
		return nil, err
	}

	floors := make([]domain.Floor, 0, len(data.Floors))
	for _, floor := range data.Floors {
		floors = append(floors, domain.Floor{
			ID:        string(floor.FloorID),
			Name:      floor.FloorName,
			Active:    floor.Status == floorStatusActive,
			Blueprint: floor.BlueprintURL,
		})
	}
	return floors, nil
}

func (c *Client) Spaces(ctx context.Context, token string, query ports.SpaceQuery) ([]domain.Space, error) {
	var adjective string
	switch query.Availability {
	case domain.Available:
		adjective = "available"
	case domain.Booked:
		adjective = "booked"
	default:
		return nil, fmt.Errorf("unknown availability %d", query.Availability)
	}

	var data spacesData
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   fmt.Sprintf(spacesPathFormat, adjective),
		query: url.Values{
			"taskId":    {query.TaskID},
			"floorId":   {query.FloorID},
			"startTime": {query.StartTime},
			"endTime":   {query.EndTime},
		},
		headers: tokenHeader(token),
	}, &data)
	if err != nil {
		return nil, err
	}

	spaces := make([]domain.Space, 0, len(data.Spaces))
	for _, entry := range data.Spaces {
		spaces = append(spaces, entry.toDomain(query.Availability))
	}
	return spaces, nil
}

// ReserveSpace assigns a desk to the task's reservation and returns the desk label.
func (c *Client) ReserveSpace(ctx context.Context, token string, req ports.SpaceReservation) (string, error) {
	var data reserveSpaceData
	err := c.do(ctx, call{
		method:  http.MethodPost,
		path:    reserveSpacePath,
		headers: tokenHeader(token),
		body: reserveSpaceRequest{
			TaskID:        req.TaskID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			SpaceID:       req.SpaceID,
			UserID:        req.UserID,
			ReservationID: req.ReservationID,
		},
	}, &data)
	if err != nil {
		return "", err
	}
	return data.Label, nil
}

func (c *Client) SubmitReservations(ctx context.Context, token string, req domain.ReservationRequest) error {
	if len(req.Slots) == 0 {
		return errors.New("reservation request has no slots")
	}

	body := reservationsRequest{
		ReservationType: domain.ReservationTypeLocation,
		LocationID:      req.LocationID,
		Reservations:    make([]reservationEntry, 0, len(req.Slots)),
	}
	for _, slot := range req.Slots {
		body.Reservations = append(body.Reservations, reservationEntry{
			StartTimeUTC: slot.StartUTC.UTC().Format(time.RFC3339),
			EndTimeUTC:   slot.EndUTC.UTC().Format(time.RFC3339),
			IsPrivate:    slot.Private,
		})
	}
	return c.do(ctx, call{method: http.MethodPost, path: reservationsPath, headers: tokenHeader(token), body: body}, nil)
}

// BookingSummary returns the days in [start, end] on which the user holds a reservation.
func (c *Client) BookingSummary(ctx context.Context, token string, start, end domain.Date) (domain.DateSet, error) {
	var data summaryData
	err := c.do(ctx, call{
		method:  http.MethodGet,
		path:    summaryPath,
		query:   url.Values{"statStart": {start.QueryString()}, "statEnd": {end.QueryString()}},
		headers: tokenHeader(token),
	}, &data)
	if err != nil {
		return nil, err
	}

	booked := domain.NewDateSet()
	for _, stat := range data.WeeklyStats {
		day, err := domain.ParseQueryDate(stat.Date)
		if err != nil {
			return nil, &domain.TransportError{Method: http.MethodGet, URL: summaryPath, StatusCode: http.StatusOK, Err: err}
		}
		booked.Add(day)
	}
	return booked, nil
}

// Followings returns every followed coworker, including those without reservations in range.
func (c *Client) Followings(ctx context.Context, token string, start, end domain.Date) ([]domain.FollowedBookings, error) {
	var data followingsData
	err := c.do(ctx, call{
		method:  http.MethodGet,
		path:    followingsPath,
		query:   url.Values{"startDate": {start.QueryString()}, "endDate": {end.QueryString()}},
		headers: tokenHeader(token),
	}, &data)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FollowedBookings, 0, len(data.Followings))
	for _, user := range data.Followings {
		days := domain.NewDateSet()
		for _, reservation := range user.ReservationsMetadata {
			day, err := domain.ParseTimestampDate(reservation.ReservationStartTime)
			if err != nil {
				return nil, &domain.TransportError{Method: http.MethodGet, URL: followingsPath, StatusCode: http.StatusOK, Err: err}
			}
			days.Add(day)
		}
		out = append(out, domain.FollowedBookings{Name: user.FullName, Dates: days})
	}
	return out, nil
}
