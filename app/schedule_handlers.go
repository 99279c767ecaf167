package schedly

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/putto11262002/schedly/core"
	"github.com/putto11262002/schedly/pkg/router"
)

type ScheduleHandler struct {
	store core.ScheduleStore
}

func NewScheduleHandler(store core.ScheduleStore) *ScheduleHandler {
	return &ScheduleHandler{store: store}
}

type CreateEntryPayload struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartsAt    string `json:"starts_at" validate:"omitempty,datetime=15:04"`
	EndsAt      string `json:"ends_at" validate:"omitempty,datetime=15:04"`
	Description string `json:"description"`
}

// GetMyScheduleHandler returns the authenticated user's entries for the date
// in the "date" query parameter, defaulting to today.
func (h *ScheduleHandler) GetMyScheduleHandler(w http.ResponseWriter, r *http.Request) error {
	session := core.SessionFromRequest(r)

	date := r.URL.Query().Get("date")
	if date == "" {
		date = core.Today()
	}

	entries, err := h.store.GetEntriesByUserAndDate(r.Context(), session.UserID, date)
	if err != nil {
		return fmt.Errorf("get schedule entries: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}

func (h *ScheduleHandler) CreateEntryHandler(w http.ResponseWriter, r *http.Request) error {
	session := core.SessionFromRequest(r)

	var payload CreateEntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return fmt.Errorf("Decode: %w", err)
	}
	defer r.Body.Close()

	if err := validate.Struct(payload); err != nil {
		return router.NewJsonError(http.StatusBadRequest, "invalid input")
	}

	entry, err := h.store.CreateEntry(r.Context(), core.ScheduleEntry{
		UserID:      session.UserID,
		Date:        payload.Date,
		Title:       payload.Title,
		StartsAt:    payload.StartsAt,
		EndsAt:      payload.EndsAt,
		Description: payload.Description,
	})
	if err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}
	return nil
}
