package calendar

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/klokku/agenda/internal/rest"
	"github.com/klokku/agenda/pkg/event"
	"github.com/klokku/agenda/pkg/loader"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	calendar *Service
}

type EventDTO struct {
	UID             string `json:"uid"`
	Name            string `json:"name"`
	Date            string `json:"date"`
	Start           string `json:"start"`
	End             string `json:"end"`
	Weekday         int    `json:"weekday"`
	DurationMinutes int    `json:"durationMinutes"`
}

type MonthDTO struct {
	Month  string     `json:"month"`
	Number int        `json:"number"`
	Events []EventDTO `json:"events"`
}

type CountDTO struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type BusiestDTO struct {
	Months []string `json:"months"`
	Count  int      `json:"count"`
}

type LongestDTO struct {
	Name string `json:"name"`
}

type CancelRequestDTO struct {
	Months  []string `json:"months"`
	Weekday int      `json:"weekday"`
}

type CancelResponseDTO struct {
	Cancelled int `json:"cancelled"`
}

type StatusDTO struct {
	Source   string    `json:"source"`
	LoadedAt time.Time `json:"loadedAt"`
	Events   int       `json:"events"`
	Months   []string  `json:"months"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{s}
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(h.calendar.Render(r.Context()))); err != nil {
		log.Errorf("failed to write calendar: %v", err)
	}
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	idx := h.calendar.Snapshot(r.Context())

	months := make([]MonthDTO, 0, 12)
	for _, m := range idx.Months() {
		events := idx.Events(m)
		dtos := make([]EventDTO, 0, len(events))
		for _, e := range events {
			dtos = append(dtos, eventToDTO(e))
		}
		months = append(months, MonthDTO{Month: MonthLabel(m), Number: int(m), Events: dtos})
	}
	rest.WriteJSON(w, http.StatusOK, months)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var record loader.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := loader.Validate(record); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event", err.Error())
		return
	}
	e, err := event.New(record.Name, record.Date, record.Start, record.End)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid event", err.Error())
		return
	}

	h.calendar.AddEvent(r.Context(), e)
	rest.WriteJSON(w, http.StatusCreated, eventToDTO(e))
}

func (h *Handler) CountInMonth(w http.ResponseWriter, r *http.Request) {
	month, err := ParseMonth(mux.Vars(r)["month"])
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid month", err.Error())
		return
	}
	count, err := h.calendar.CountInMonth(r.Context(), month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, CountDTO{Month: MonthLabel(month), Count: count})
}

func (h *Handler) BusiestMonths(w http.ResponseWriter, r *http.Request) {
	months, count := h.calendar.BusiestMonths(r.Context())
	rest.WriteJSON(w, http.StatusOK, BusiestDTO{Months: monthLabels(months), Count: count})
}

func (h *Handler) LongestEvent(w http.ResponseWriter, r *http.Request) {
	name, ok := h.calendar.LongestEvent(r.Context())
	if !ok {
		rest.WriteError(w, http.StatusNotFound, "Calendar is empty", "there is no event to compare")
		return
	}
	rest.WriteJSON(w, http.StatusOK, LongestDTO{Name: name})
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	months, err := ParseMonths(req.Months)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid month", err.Error())
		return
	}

	cancelled, err := h.calendar.Cancel(r.Context(), months, req.Weekday)
	if err != nil {
		if errors.Is(err, ErrInvalidWeekday) || errors.Is(err, ErrInvalidMonth) {
			rest.WriteError(w, http.StatusBadRequest, "Invalid cancellation", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, CancelResponseDTO{Cancelled: cancelled})
}

func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if _, err := h.calendar.Reload(r.Context()); err != nil {
		log.Errorf("failed to reload calendar: %v", err)
		if errors.Is(err, ErrNoSource) || errors.Is(err, loader.ErrSourceNotFound) {
			rest.WriteError(w, http.StatusConflict, "Unable to reload calendar", err.Error())
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Status(w, r)
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.calendar.Status(r.Context())
	rest.WriteJSON(w, http.StatusOK, StatusDTO{
		Source:   status.Source,
		LoadedAt: status.LoadedAt,
		Events:   status.Events,
		Months:   monthLabels(status.Months),
	})
}

func eventToDTO(e event.Event) EventDTO {
	return EventDTO{
		UID:             e.UID(),
		Name:            e.Name(),
		Date:            e.Date().Format(event.DateLayout),
		Start:           e.Start().Format(event.TimeLayout),
		End:             e.End().Format(event.TimeLayout),
		Weekday:         e.Weekday(),
		DurationMinutes: e.DurationMinutes(),
	}
}
