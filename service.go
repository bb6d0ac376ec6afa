package maglayout

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/foomo/maglayout/config"
	"github.com/foomo/maglayout/vo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

type Service struct {
	Walker *Walker
	logger *slog.Logger

	mu             sync.RWMutex
	completeStatus *vo.Status
	running        bool
}

func NewService(conf *config.Config, logger *slog.Logger, registerer prometheus.Registerer) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	w := NewWalker(
		conf.LayoutDir,
		conf.ImageDir,
		WithLogger(logger),
		WithIndexMode(IndexMode(conf.IndexMode)),
		WithNormalizedKeywords(conf.NormalizeKeywords),
		WithRegisterer(registerer),
	)
	return &Service{
		Walker: w,
		logger: logger,
	}
}

// Rewalk walks the corpus and replaces the last complete status. Concurrent
// calls while a walk is running return immediately.
func (s *Service) Rewalk() (status vo.Status, err error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.Info("walk already running")
		return s.GetStatus(), nil
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("walking corpus", "layoutDir", s.Walker.layoutDir)
	status, err = s.Walker.Collect()
	s.logger.Info(
		"walk done",
		"files", status.Files,
		"results", len(status.Results),
		"skipped", len(status.Skipped),
		"duration", status.Duration,
	)

	s.mu.Lock()
	s.running = false
	s.completeStatus = &status
	s.mu.Unlock()
	return status, err
}

// Schedule rewalks the corpus on a cron spec like "@every 1h"
func (s *Service) Schedule(spec string) (stop func(), err error) {
	c := cron.New()
	_, err = c.AddFunc(spec, func() {
		if _, errRewalk := s.Rewalk(); errRewalk != nil {
			s.logger.Error("scheduled walk failed", "error", errRewalk)
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	s.logger.Info("scheduled walks", "spec", spec)
	return func() { <-c.Stop().Done() }, nil
}

// GetStatus the status of the last complete walk, empty before the first one
func (s *Service) GetStatus() vo.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.completeStatus == nil {
		return vo.Status{}
	}
	return *s.completeStatus
}

func (s *Service) GetServiceStatus() ServiceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := ServiceStatus{
		LayoutDir: s.Walker.layoutDir,
		Running:   s.running,
		Walked:    s.completeStatus != nil,
	}
	if s.completeStatus != nil {
		status.Results = len(s.completeStatus.Results)
		status.Skipped = len(s.completeStatus.Skipped)
		status.Started = s.completeStatus.Started
		status.Duration = s.completeStatus.Duration
	}
	return status
}

// StatusFunc adapter for report handlers
func (s *Service) StatusFunc() func() *vo.Status {
	return func() *vo.Status {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.completeStatus
	}
}

type filterFunc func(result vo.Result) bool
type filterChain []filterFunc

type Filters struct {
	Category    string
	Label       string
	MinElements int
}

func getFilterChain(filters Filters) filterChain {
	chain := filterChain{}
	if filters.Category != "" {
		chain = append(chain, func(result vo.Result) bool {
			return result.Category == filters.Category
		})
	}
	if filters.Label != "" {
		chain = append(chain, func(result vo.Result) bool {
			return result.Labels[filters.Label] > 0
		})
	}
	if filters.MinElements > 0 {
		chain = append(chain, func(result vo.Result) bool {
			return result.Elements >= filters.MinElements
		})
	}
	return chain
}

func filter(results []vo.Result, chain filterChain) []vo.Result {
	filtered := []vo.Result{}
ResultLoop:
	for _, result := range results {
		for _, filterFunc := range chain {
			if !filterFunc(result) {
				continue ResultLoop
			}
		}
		filtered = append(filtered, result)
	}
	return filtered
}

// GetResults filtered results of the last walk ordered by index, page is zero based
func (s *Service) GetResults(
	filters Filters,
	page int,
	pageSize int,
) (results []vo.Result, numPages int) {
	results = filter(s.GetStatus().Results, getFilterChain(filters))
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	if pageSize < 1 {
		return results, 1
	}
	numPages = (len(results) + pageSize - 1) / pageSize
	start := page * pageSize
	end := start + pageSize
	if start < 0 {
		start = 0
	}
	if end > len(results) {
		end = len(results)
	}
	if start >= end {
		return []vo.Result{}, numPages
	}
	return results[start:end], numPages
}
