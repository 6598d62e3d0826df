package update

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/milenabadalyan-mb/contacts-backend/internal/http/middlewarectx"
	"github.com/milenabadalyan-mb/contacts-backend/internal/models"
	"github.com/milenabadalyan-mb/contacts-backend/internal/storage/memory"
)

type ContactServiceMock struct {
	mock.Mock
}

func (m *ContactServiceMock) Update(ctx context.Context, username, id string, upd models.ContactUpdate) (*models.Contact, error) {
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

func strPtr(s string) *string { return &s }

func TestUpdateHandler_ServeHTTP(t *testing.T) {
	updated := &models.Contact{ID: "id-1", Name: "Bob", Email: "", Phone: "555"}

	tests := []struct {
		name           string
		ctxUsername    any
		contactID      string
		requestBody    interface{}
		mockUpd        models.ContactUpdate
		mockContact    *models.Contact
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMsg        string
	}{
		{
			name:           "partial update phone only",
			ctxUsername:    "alice",
			contactID:      "id-1",
			requestBody:    map[string]any{"phone": "555"},
			mockUpd:        models.ContactUpdate{Phone: strPtr("555")},
			mockContact:    updated,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "explicit empty email is passed through",
			ctxUsername:    "alice",
			contactID:      "id-1",
			requestBody:    map[string]any{"email": ""},
			mockUpd:        models.ContactUpdate{Email: strPtr("")},
			mockContact:    updated,
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json body",
			ctxUsername:    "alice",
			contactID:      "id-1",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMsg:        "invalid request body",
		},
		{
			name:           "no username in context",
			ctxUsername:    nil,
			contactID:      "id-1",
			requestBody:    map[string]any{"phone": "555"},
			wantStatusCode: http.StatusUnauthorized,
			wantMsg:        "Unauthorized",
		},
		{
			name:           "contact not found",
			ctxUsername:    "alice",
			contactID:      "missing",
			requestBody:    map[string]any{"phone": "555"},
			mockUpd:        models.ContactUpdate{Phone: strPtr("555")},
			mockErr:        fmt.Errorf("storage.UpdateContact: %w", memory.ErrContactNotFound),
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMsg:        "Contact not found",
		},
		{
			name:           "service error",
			ctxUsername:    "alice",
			contactID:      "id-1",
			requestBody:    map[string]any{"phone": "555"},
			mockUpd:        models.ContactUpdate{Phone: strPtr("555")},
			mockErr:        errors.New("unexpected"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMsg:        "could not update contact",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ContactServiceMock)
			if tt.mockCalled {
				serviceMock.On("Update", mock.Anything, "alice", tt.contactID, tt.mockUpd).
					Return(tt.mockContact, tt.mockErr).Once()
			}

			handler := New(newNoopLogger(), serviceMock)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPut, "/api/contacts/"+tt.contactID, bytes.NewReader(bodyBytes))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.contactID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.ctxUsername != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.ctxUsername))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantMsg != "" {
				var got map[string]any
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMsg, got["msg"])
			} else {
				var got models.Contact
				err := json.NewDecoder(rec.Body).Decode(&got)
				assert.NoError(t, err)
				assert.Equal(t, *tt.mockContact, got)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
