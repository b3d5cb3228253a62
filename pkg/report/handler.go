package report

import (
	"context"
	"net/http"

	"github.com/klokku/agenda/pkg/calendar"
	log "github.com/sirupsen/logrus"
)

// SnapshotProviderFunc returns a copy of the calendar to report on.
type SnapshotProviderFunc func(ctx context.Context) *calendar.Index

type Handler struct {
	snapshot SnapshotProviderFunc
	renderer *CsvRendererImpl
}

func NewHandler(snapshot SnapshotProviderFunc, renderer *CsvRendererImpl) *Handler {
	return &Handler{snapshot: snapshot, renderer: renderer}
}

func (h *Handler) GetSummaryCsv(w http.ResponseWriter, r *http.Request) {
	csv, err := h.renderer.RenderSummary(Summarize(h.snapshot(r.Context())))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCsv(w, "summary.csv", csv)
}

func (h *Handler) GetEventsCsv(w http.ResponseWriter, r *http.Request) {
	csv, err := h.renderer.RenderEvents(h.snapshot(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeCsv(w, "events.csv", csv)
}

func writeCsv(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Errorf("failed to write %s: %v", filename, err)
	}
}
