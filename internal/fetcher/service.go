package fetcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"news_dashboard/internal/logger"
	"news_dashboard/internal/metrics"
	"news_dashboard/internal/models"
)

// ArticleCache persists fetched articles so the dashboard can still
// show something when both upstreams are down.
type ArticleCache interface {
	SaveArticles(ctx context.Context, articles []models.Article) error
	CachedArticles(ctx context.Context) ([]models.Article, error)
}

// Snapshot is the combined result of one refresh cycle: whatever loaded
// plus one error record per failed source.
type Snapshot struct {
	Articles  []models.Article
	Errors    []models.SourceError
	FromCache bool
	FetchedAt time.Time
}

// Service owns the two upstream clients and the latest snapshot. A
// refresh fans both fetches out concurrently; each source carries its
// own timeout and fails in isolation, so one slow or broken API never
// hides the other's results.
type Service struct {
	clients []Client
	cache   ArticleCache
	timeout time.Duration

	mu   sync.RWMutex
	snap Snapshot
}

func NewService(cache ArticleCache, timeout time.Duration, clients ...Client) *Service {
	return &Service{
		clients: clients,
		cache:   cache,
		timeout: timeout,
	}
}

// Refresh reissues every source fetch from scratch and replaces the
// snapshot. A retry is just another Refresh; there is no per-source
// retry in this design.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	type result struct {
		source   string
		articles []models.Article
		err      error
	}

	results := make([]result, len(s.clients))
	var wg sync.WaitGroup
	for i, client := range s.clients {
		wg.Add(1)
		go func(i int, c Client) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			articles, err := c.Fetch(fetchCtx)
			results[i] = result{source: c.Source(), articles: articles, err: err}
		}(i, client)
	}
	wg.Wait()

	snap := Snapshot{FetchedAt: time.Now()}
	for _, res := range results {
		log := logger.WithSource(res.source)
		if res.err != nil {
			log.Errorf("Fetch failed: %v", res.err)
			srcErr := sourceError(res.source, res.err)
			snap.Errors = append(snap.Errors, srcErr)
			metrics.SourceFetches.WithLabelValues(res.source, "error").Inc()
			metrics.SourceFetchErrors.WithLabelValues(res.source, string(srcErr.Kind)).Inc()
			continue
		}
		log.Infof("Fetched %d articles", len(res.articles))
		snap.Articles = append(snap.Articles, res.articles...)
		metrics.SourceFetches.WithLabelValues(res.source, "success").Inc()
	}

	s.updateCache(ctx, &snap)

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap
}

// Snapshot returns the result of the most recent refresh.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Service) updateCache(ctx context.Context, snap *Snapshot) {
	if s.cache == nil {
		return
	}
	if len(snap.Articles) > 0 {
		if err := s.cache.SaveArticles(ctx, snap.Articles); err != nil {
			logger.Log.Warnf("Failed to cache articles: %v", err)
		}
		return
	}
	if len(snap.Errors) < len(s.clients) {
		return
	}
	// Every source failed; serve the last cached result instead of an
	// empty dashboard.
	cached, err := s.cache.CachedArticles(ctx)
	if err != nil {
		logger.Log.Warnf("Failed to read article cache: %v", err)
		return
	}
	if len(cached) > 0 {
		snap.Articles = cached
		snap.FromCache = true
		logger.Log.Infof("Serving %d cached articles", len(cached))
	}
}

func sourceError(source string, err error) models.SourceError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return models.SourceError{Source: source, Kind: fe.Kind, Message: fe.Message}
	}
	return models.SourceError{Source: source, Kind: models.ErrGeneric, Message: err.Error()}
}
