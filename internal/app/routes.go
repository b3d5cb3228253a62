package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Calendar
	r.HandleFunc("/api/calendar", deps.CalendarHandler.Render).Methods("GET")
	r.HandleFunc("/api/calendar/event", deps.CalendarHandler.GetEvents).Methods("GET")
	r.HandleFunc("/api/calendar/event", deps.CalendarHandler.CreateEvent).Methods("POST")
	r.HandleFunc("/api/calendar/month/{month}/count", deps.CalendarHandler.CountInMonth).Methods("GET")
	r.HandleFunc("/api/calendar/busiest", deps.CalendarHandler.BusiestMonths).Methods("GET")
	r.HandleFunc("/api/calendar/longest", deps.CalendarHandler.LongestEvent).Methods("GET")
	r.HandleFunc("/api/calendar/cancel", deps.CalendarHandler.Cancel).Methods("POST")
	r.HandleFunc("/api/calendar/reload", deps.CalendarHandler.Reload).Methods("POST")
	r.HandleFunc("/api/calendar/status", deps.CalendarHandler.Status).Methods("GET")

	// Reports
	r.HandleFunc("/api/calendar/report.csv", deps.ReportHandler.GetSummaryCsv).Methods("GET")
	r.HandleFunc("/api/calendar/events.csv", deps.ReportHandler.GetEventsCsv).Methods("GET")
}
