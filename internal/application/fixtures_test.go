package application

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuzawa-san/wawona/internal/domain"
	"github.com/yuzawa-san/wawona/internal/ports/mocks"
	"github.com/yuzawa-san/wawona/internal/testutil"
)

type harness struct {
	workplace *testutil.FakeWorkplace
	secrets   *testutil.FakeSecretStore
	prompter  *testutil.ScriptedPrompter
	provider  *mocks.MockIdentityProvider
	floorPlan *testutil.FloorPlanStub
	out       *bytes.Buffer
	sessions  *SessionManager
}

// newHarness starts with a stored, valid token so no login happens.
func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		workplace: testutil.NewFakeWorkplace(),
		secrets:   testutil.NewFakeSecretStore(),
		prompter:  testutil.NewScriptedPrompter(),
		provider:  mocks.NewMockIdentityProvider(t),
		floorPlan: &testutil.FloorPlanStub{Output: "[floor plan]"},
		out:       &bytes.Buffer{},
	}
	require.NoError(t, h.secrets.Put(context.Background(), tokenKey, "token-1"))
	h.workplace.ValidToken = "token-1"
	h.sessions = NewSessionManager(testIdentity, h.provider, h.secrets, h.prompter, h.out, nil)
	return h
}

func (h *harness) desks(preferredID string) *DeskSelector {
	return NewDeskSelector(preferredID, h.prompter, h.floorPlan, h.out, nil)
}

func (h *harness) resolver(preferredID string) *TaskResolver {
	return NewTaskResolver(h.sessions, h.workplace, h.prompter, h.desks(preferredID), h.out, nil)
}

func checkInCard() domain.Card {
	return domain.Card{
		DisplayTitle:  "Good morning",
		Title:         "Ada",
		Heading:       "please check in",
		BasicSubtitle: "Wed, 14 Oct",
		Caption:       "8:00 AM - 5:59 PM",
	}
}

func checkInQuestionnaire() *domain.Questionnaire {
	return &domain.Questionnaire{
		HasQuestionnaire: true,
		Questions: []domain.Question{
			{
				ID:         "q-health",
				Title:      "Are you feeling well?",
				AnswerType: domain.AnswerTypeSingleSelect,
				Category:   domain.CategoryAllUsers,
				Choices: []domain.Choice{
					{ID: "c-yes", Label: "Yes", Type: domain.ChoiceTypeQualify},
					{ID: "c-no", Label: "No", Type: domain.ChoiceTypeQualify},
				},
			},
			{
				ID:         "q-ack",
				Title:      "I will follow the office policy",
				AnswerType: domain.AnswerTypeSingleSelect,
				Category:   domain.CategoryAllUsers,
				Choices: []domain.Choice{
					{ID: "c-ack", Label: "Agree", Type: domain.ChoiceTypeQualify},
				},
			},
		},
	}
}

func bookingWindow() domain.BookingWindow {
	return domain.BookingWindow{
		FloorID:       "floor-3",
		SpaceID:       "D7",
		StartTime:     "2026-10-14 08:00:00",
		EndTime:       "2026-10-14 17:59:00",
		RecipientID:   "user-9",
		ReservationID: "resv-1",
	}
}
