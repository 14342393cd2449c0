package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"news_dashboard/internal/config"
	"news_dashboard/internal/fetcher"
	"news_dashboard/internal/filter"
	"news_dashboard/internal/logger"
	"news_dashboard/internal/models"
	"news_dashboard/internal/pagination"
	"news_dashboard/internal/payout"
	"news_dashboard/internal/stats"
)

const distributionLimit = 10

// RateStore persists the payout rate across restarts.
type RateStore interface {
	SetRate(ctx context.Context, rate float64) error
}

// Server holds the dashboard API dependencies: the fetch service with
// the current snapshot, the shared filter store both views read from,
// and the persisted payout rate.
type Server struct {
	cfg     *config.Config
	fetch   *fetcher.Service
	filters *filter.Store
	rates   RateStore

	mu         sync.Mutex
	rate       float64
	newsPage   int
	payoutPage int
}

// NewServer wires the server and subscribes to the filter store so a
// committed filter change resets both views to page 1.
func NewServer(cfg *config.Config, fetch *fetcher.Service, filters *filter.Store, rates RateStore, rate float64) *Server {
	s := &Server{
		cfg:        cfg,
		fetch:      fetch,
		filters:    filters,
		rates:      rates,
		rate:       rate,
		newsPage:   1,
		payoutPage: 1,
	}
	filters.Subscribe(func(filter.Spec) {
		s.mu.Lock()
		s.newsPage = 1
		s.payoutPage = 1
		s.mu.Unlock()
	})
	return s
}

// Routes registers all dashboard endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/articles", s.HandleArticles)
	mux.HandleFunc("GET /api/payouts", s.HandlePayouts)
	mux.HandleFunc("GET /api/payouts/export", s.HandleExport)
	mux.HandleFunc("GET /api/distribution", s.HandleDistribution)
	mux.HandleFunc("GET /api/filters", s.HandleGetFilters)
	mux.HandleFunc("PUT /api/filters", s.HandleUpdateFilters)
	mux.HandleFunc("POST /api/filters/reset", s.HandleResetFilters)
	mux.HandleFunc("GET /api/rate", s.HandleGetRate)
	mux.HandleFunc("PUT /api/rate", s.HandleSetRate)
	mux.HandleFunc("POST /api/refresh", s.HandleRefresh)
	mux.HandleFunc("GET /health", s.HealthCheck)
}

// HealthCheck responds 200 once the server is up.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

// HandleArticles serves one page of the filtered news view, with the
// header totals both dashboards show.
func (s *Server) HandleArticles(w http.ResponseWriter, r *http.Request) {
	snap := s.fetch.Snapshot()
	spec := s.filters.Current()
	filtered := filter.Apply(snap.Articles, spec)

	page := s.viewPage(r, &s.newsPage, len(filtered), s.cfg.NewsPageSize)
	items, totalPages := pagination.Paginate(filtered, page, s.cfg.NewsPageSize)

	resp := models.ArticlesResponse{
		Items:         items,
		TotalArticles: len(filtered),
		Errors:        snap.Errors,
		Pagination: models.PaginationResponse{
			TotalItems:   len(filtered),
			TotalPages:   totalPages,
			CurrentPage:  page,
			ItemsPerPage: s.cfg.NewsPageSize,
		},
	}
	for _, a := range filtered {
		switch a.Type {
		case models.TypeNews:
			resp.NewsCount++
		case models.TypeBlog:
			resp.BlogCount++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePayouts serves one page of the filtered payout table. Rows are
// recomputed from scratch on every request; with an active date range
// the per-row figures cover only the in-range publishes.
func (s *Server) HandlePayouts(w http.ResponseWriter, r *http.Request) {
	snap := s.fetch.Snapshot()
	spec := s.filters.Current()
	rate := s.currentRate()

	rows := payout.Aggregate(snap.Articles, rate)
	filtered := filter.ApplyPayouts(rows, spec, rate)

	page := s.viewPage(r, &s.payoutPage, len(filtered), s.cfg.PayoutPageSize)
	items, totalPages := pagination.Paginate(filtered, page, s.cfg.PayoutPageSize)

	writeJSON(w, http.StatusOK, models.PayoutsResponse{
		Items:       items,
		TotalPayout: payout.Total(filtered),
		Rate:        rate,
		Errors:      snap.Errors,
		Pagination: models.PaginationResponse{
			TotalItems:   len(filtered),
			TotalPages:   totalPages,
			CurrentPage:  page,
			ItemsPerPage: s.cfg.PayoutPageSize,
		},
	})
}

// HandleExport streams the filtered payout table as CSV.
func (s *Server) HandleExport(w http.ResponseWriter, r *http.Request) {
	snap := s.fetch.Snapshot()
	spec := s.filters.Current()
	rate := s.currentRate()

	rows := filter.ApplyPayouts(payout.Aggregate(snap.Articles, rate), spec, rate)
	exports := payout.ExportRows(rows, rate)

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, exports)
		return
	}

	filename := fmt.Sprintf("payouts_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := payout.WriteCSV(w, exports); err != nil {
		logger.Log.Errorf("CSV export failed: %v", err)
	}
}

// HandleDistribution serves the top-authors table for the chart,
// computed over the filtered article set.
func (s *Server) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	snap := s.fetch.Snapshot()
	filtered := filter.Apply(snap.Articles, s.filters.Current())
	writeJSON(w, http.StatusOK, stats.TopAuthors(filtered, distributionLimit))
}

// HandleGetFilters returns the committed filter spec.
func (s *Server) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.filters.Current())
}

// HandleUpdateFilters stages the submitted spec as a draft and commits
// it if valid. An invalid draft leaves the committed spec untouched.
func (s *Server) HandleUpdateFilters(w http.ResponseWriter, r *http.Request) {
	var spec filter.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter payload")
		return
	}
	if spec.Type == "" {
		spec.Type = models.TypeAll
	}

	draft := filter.NewDraft(spec)
	if err := draft.Commit(s.filters); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.filters.Current())
}

// HandleResetFilters restores the default spec.
func (s *Server) HandleResetFilters(w http.ResponseWriter, r *http.Request) {
	s.filters.Reset()
	writeJSON(w, http.StatusOK, s.filters.Current())
}

// HandleGetRate returns the current payout rate.
func (s *Server) HandleGetRate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]float64{"rate": s.currentRate()})
}

// HandleSetRate updates and persists the payout rate. A non-positive
// rate is rejected at this boundary and never committed.
func (s *Server) HandleSetRate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rate float64 `json:"rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate payload")
		return
	}
	if body.Rate <= 0 {
		writeError(w, http.StatusBadRequest, "rate must be positive")
		return
	}

	s.mu.Lock()
	s.rate = body.Rate
	s.mu.Unlock()

	if s.rates != nil {
		if err := s.rates.SetRate(r.Context(), body.Rate); err != nil {
			logger.Log.Errorf("Failed to persist rate: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]float64{"rate": body.Rate})
}

// HandleRefresh reissues both source fetches from scratch and reports
// what loaded.
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	snap := s.fetch.Refresh(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles":   len(snap.Articles),
		"errors":     snap.Errors,
		"from_cache": snap.FromCache,
		"fetched_at": snap.FetchedAt,
	})
}

func (s *Server) currentRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// viewPage resolves the page for a view: an explicit ?page= moves the
// view's stored page, which is clamped to the filtered result's bounds
// either way. Filter commits reset the stored page to 1 via the store
// subscription.
func (s *Server) viewPage(r *http.Request, stored *int, totalItems, pageSize int) int {
	totalPages := (totalItems + pageSize - 1) / pageSize

	s.mu.Lock()
	defer s.mu.Unlock()
	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			*stored = page
		}
	}
	*stored = pagination.Clamp(*stored, totalPages)
	return *stored
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
