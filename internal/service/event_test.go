package service

import (
	"context"
	"testing"

	"github.com/cattonb/google-calendar/internal/domain"
	"github.com/cattonb/google-calendar/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventTypeService_Create(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	eventType, err := svc.Create(context.Background(), "o1", domain.CreateEventTypeInput{
		Name:            "Intro Call",
		Description:     "A short introduction",
		DurationMinutes: 30,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, eventType.ID)
	assert.Equal(t, "o1", eventType.OwnerID)
	assert.Equal(t, "Intro Call", eventType.Name)
	assert.Equal(t, 30, eventType.DurationMinutes)
	assert.True(t, eventType.IsActive, "active by default")
}

func TestEventTypeService_Create_Inactive(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	inactive := false
	eventType, err := svc.Create(context.Background(), "o1", domain.CreateEventTypeInput{
		Name:            "Draft",
		DurationMinutes: 60,
		IsActive:        &inactive,
	})

	require.NoError(t, err)
	assert.False(t, eventType.IsActive)
}

func TestEventTypeService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input domain.CreateEventTypeInput
	}{
		{name: "missing name", input: domain.CreateEventTypeInput{DurationMinutes: 30}},
		{name: "zero duration", input: domain.CreateEventTypeInput{Name: "Call", DurationMinutes: 0}},
		{name: "negative duration", input: domain.CreateEventTypeInput{Name: "Call", DurationMinutes: -15}},
		{name: "duration above cap", input: domain.CreateEventTypeInput{Name: "Call", DurationMinutes: domain.MaxEventDurationMinutes + 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockEventTypeRepo(t)
			svc := NewEventTypeService(repo)

			_, err := svc.Create(context.Background(), "o1", tc.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, repo.Calls)
		})
	}
}

func TestEventTypeService_Update(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	existing := &domain.EventType{
		ID:              "et1",
		OwnerID:         "o1",
		Name:            "Intro Call",
		DurationMinutes: 30,
		IsActive:        true,
	}
	repo.EXPECT().GetByOwnerAndID(mock.Anything, "o1", "et1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	newName := "Discovery Call"
	newDuration := 45
	inactive := false
	eventType, err := svc.Update(context.Background(), "o1", "et1", domain.UpdateEventTypeInput{
		Name:            &newName,
		DurationMinutes: &newDuration,
		IsActive:        &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Discovery Call", eventType.Name)
	assert.Equal(t, 45, eventType.DurationMinutes)
	assert.False(t, eventType.IsActive)
}

func TestEventTypeService_Update_PartialPatch(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	existing := &domain.EventType{
		ID:              "et1",
		OwnerID:         "o1",
		Name:            "Intro Call",
		Description:     "Short",
		DurationMinutes: 30,
		IsActive:        true,
	}
	repo.EXPECT().GetByOwnerAndID(mock.Anything, "o1", "et1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	newDescription := "A longer description"
	eventType, err := svc.Update(context.Background(), "o1", "et1", domain.UpdateEventTypeInput{
		Description: &newDescription,
	})

	require.NoError(t, err)
	assert.Equal(t, "Intro Call", eventType.Name)
	assert.Equal(t, "A longer description", eventType.Description)
	assert.Equal(t, 30, eventType.DurationMinutes)
}

func TestEventTypeService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	repo.EXPECT().GetByOwnerAndID(mock.Anything, "o1", "missing").Return(nil, domain.ErrEventTypeNotFound)

	newName := "Renamed"
	_, err := svc.Update(context.Background(), "o1", "missing", domain.UpdateEventTypeInput{Name: &newName})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventTypeNotFound)
}

func TestEventTypeService_Update_InvalidDuration(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	existing := &domain.EventType{ID: "et1", OwnerID: "o1", Name: "Intro Call", DurationMinutes: 30, IsActive: true}
	repo.EXPECT().GetByOwnerAndID(mock.Anything, "o1", "et1").Return(existing, nil)

	badDuration := 0
	_, err := svc.Update(context.Background(), "o1", "et1", domain.UpdateEventTypeInput{DurationMinutes: &badDuration})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Len(t, repo.Calls, 1, "no write on invalid patch")
}

func TestEventTypeService_List(t *testing.T) {
	repo := mocks.NewMockEventTypeRepo(t)
	svc := NewEventTypeService(repo)

	want := []*domain.EventType{
		{ID: "et1", OwnerID: "o1", Name: "Intro Call"},
		{ID: "et2", OwnerID: "o1", Name: "Deep Dive"},
	}
	repo.EXPECT().ListByOwner(mock.Anything, "o1").Return(want, nil)

	got, err := svc.List(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
