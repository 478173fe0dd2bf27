package metrics

import (
	"sync"
	"time"
)

// Metrics collects per-run pipeline counters. They back the post-run summary
// the CLI prints after a collection pass.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	QueriesIssued      int64
	QueryFailures      int64
	HitsProcessed      int64
	HitsOutsideWindow  int64
	HitsUnparsableDate int64
	HitsExcluded       int64
	DuplicatesFiltered int64
	ArticlesKept       int64

	// Timings
	LastProcessingTime    time.Duration
	TotalProcessingTime   time.Duration
	AverageProcessingTime time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime time.Time
}

var Global = &Metrics{}

func (m *Metrics) IncrementQueriesIssued() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueriesIssued++
}

func (m *Metrics) IncrementQueryFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QueryFailures++
}

func (m *Metrics) IncrementHitsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HitsProcessed++
}

func (m *Metrics) IncrementHitsOutsideWindow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HitsOutsideWindow++
}

func (m *Metrics) IncrementHitsUnparsableDate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HitsUnparsableDate++
}

func (m *Metrics) IncrementHitsExcluded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HitsExcluded++
}

func (m *Metrics) IncrementDuplicatesFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered++
}

func (m *Metrics) AddArticlesKept(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesKept += int64(n)
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
}

// Reset zeroes the per-run counters. Timings and LastRunTime survive.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.QueriesIssued = 0
	m.QueryFailures = 0
	m.HitsProcessed = 0
	m.HitsOutsideWindow = 0
	m.HitsUnparsableDate = 0
	m.HitsExcluded = 0
	m.DuplicatesFiltered = 0
	m.ArticlesKept = 0
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"queries_issued":             m.QueriesIssued,
		"query_failures":             m.QueryFailures,
		"hits_processed":             m.HitsProcessed,
		"hits_outside_window":        m.HitsOutsideWindow,
		"hits_unparsable_date":       m.HitsUnparsableDate,
		"hits_excluded":              m.HitsExcluded,
		"duplicates_filtered":        m.DuplicatesFiltered,
		"articles_kept":              m.ArticlesKept,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
	}
}
