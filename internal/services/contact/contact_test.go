package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
	services "github.com/milenabadalyan-mb/contacts-backend/internal/services/contact"
)

// Мок для ContactRepository
type ContactRepoMock struct {
	mock.Mock
}

func (m *ContactRepoMock) ListContacts(ctx context.Context, username string) ([]models.Contact, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contact), args.Error(1)
}

func (m *ContactRepoMock) AppendContact(ctx context.Context, username string, contact models.Contact) error {
	args := m.Called(ctx, username, contact)
	return args.Error(0)
}

func (m *ContactRepoMock) UpdateContact(ctx context.Context, username, id string, upd models.ContactUpdate) (*models.Contact, error) {
	args := m.Called(ctx, username, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestContactService_Create(t *testing.T) {
	repo := new(ContactRepoMock)
	svc := services.NewContactService(repo, newNoopLogger())

	repo.On("AppendContact", mock.Anything, "alice", mock.MatchedBy(func(c models.Contact) bool {
		return c.Name == "Bob" && c.Email == "" && c.Phone == "" && c.ID != ""
	})).Return(nil).Once()

	contact, err := svc.Create(context.Background(), "alice", models.DummyContact{Name: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, "Bob", contact.Name)
	assert.Equal(t, "", contact.Email)
	assert.Equal(t, "", contact.Phone)

	// Идентификатор — валидный uuid
	_, err = uuid.Parse(contact.ID)
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestContactService_Create_UniqueIDs(t *testing.T) {
	repo := new(ContactRepoMock)
	svc := services.NewContactService(repo, newNoopLogger())

	repo.On("AppendContact", mock.Anything, "alice", mock.Anything).Return(nil)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		contact, err := svc.Create(context.Background(), "alice", models.DummyContact{Name: "Bob"})
		require.NoError(t, err)

		_, dup := seen[contact.ID]
		require.False(t, dup, "duplicate contact id: %s", contact.ID)
		seen[contact.ID] = struct{}{}
	}
}

func TestContactService_Create_RepoError(t *testing.T) {
	repo := new(ContactRepoMock)
	svc := services.NewContactService(repo, newNoopLogger())

	repo.On("AppendContact", mock.Anything, "alice", mock.Anything).
		Return(errors.New("storage error")).Once()

	contact, err := svc.Create(context.Background(), "alice", models.DummyContact{Name: "Bob"})
	assert.Error(t, err)
	assert.Nil(t, contact)
}

func TestContactService_List(t *testing.T) {
	repo := new(ContactRepoMock)
	svc := services.NewContactService(repo, newNoopLogger())

	want := []models.Contact{
		{ID: "id-1", Name: "Bob"},
		{ID: "id-2", Name: "Carol"},
	}
	repo.On("ListContacts", mock.Anything, "alice").Return(want, nil).Once()

	contacts, err := svc.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, want, contacts)
	repo.AssertExpectations(t)
}

func TestContactService_Update(t *testing.T) {
	repo := new(ContactRepoMock)
	svc := services.NewContactService(repo, newNoopLogger())

	phone := "555"
	upd := models.ContactUpdate{Phone: &phone}
	want := &models.Contact{ID: "id-1", Name: "Bob", Phone: "555"}

	repo.On("UpdateContact", mock.Anything, "alice", "id-1", upd).Return(want, nil).Once()

	contact, err := svc.Update(context.Background(), "alice", "id-1", upd)
	require.NoError(t, err)
	assert.Equal(t, want, contact)
	repo.AssertExpectations(t)
}
