// Package pipeline turns raw news-search hits into a ranked, deduplicated
// list of clipping candidates for the current reporting window.
package pipeline

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/minafoods/newsclip/internal/logger"
	"github.com/minafoods/newsclip/internal/metrics"
	"github.com/minafoods/newsclip/internal/taxonomy"
	"github.com/minafoods/newsclip/internal/window"
)

// PublishedLayout is the RFC-822-style timestamp Google News puts on items,
// e.g. "Mon, 02 Jan 2024 03:04:05 GMT". Hits whose published string does not
// parse with this layout are dropped.
const PublishedLayout = "Mon, 02 Jan 2006 15:04:05 MST"

// Hit is one raw result from the external news search.
type Hit struct {
	Title       string
	Description string
	Publisher   string
	URL         string
	Published   string
}

// Searcher is the external news-search capability. Implementations are
// treated as unreliable: a failed query costs one category's contribution,
// never the whole run.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Hit, error)
}

// Article is one clipping candidate. Articles are rebuilt from scratch on
// every run and never mutated afterwards; URL is their only identity.
type Article struct {
	Category  string
	Publisher string
	Date      time.Time // calendar date, time of day not retained
	Title     string
	URL       string
	Score     int
}

// DedupPolicy picks the survivor when the same URL turns up under more than
// one category.
type DedupPolicy int

const (
	// DedupLastWins keeps the record from the category processed last,
	// matching the tool's historical merge behavior.
	DedupLastWins DedupPolicy = iota
	// DedupHighestScore keeps the higher-scoring record instead.
	DedupHighestScore
)

// QueryMode controls how taxonomy entries become search queries.
type QueryMode int

const (
	// QueryPerCategory issues one OR-group query per category.
	QueryPerCategory QueryMode = iota
	// QueryPerKeyword issues one query per individual keyword, the way the
	// earliest revisions of the tool did.
	QueryPerKeyword
)

type Options struct {
	ExcludeTitleTerms []string
	Dedup             DedupPolicy
	Mode              QueryMode

	// Progress, when set, is called after each completed query with the
	// category label and the raw hit count, before any filtering. Failed
	// queries report -1 hits.
	Progress func(category string, hits int)
}

// Titles carrying these terms are promotional or market-noise content, not
// business news. Matching is a raw, case-sensitive substring check.
var defaultExcludeTitleTerms = []string{
	"출시", "신제품", "이벤트", "행사", "증정", "프로모션", "특가", "급등",
}

func DefaultOptions() Options {
	return Options{
		ExcludeTitleTerms: defaultExcludeTitleTerms,
		Dedup:             DedupLastWins,
		Mode:              QueryPerCategory,
	}
}

type searchQuery struct {
	category string
	text     string
}

// Collect runs the full ingestion pass: one query per taxonomy entry, date
// parsing, window and exclusion filtering, relevance scoring, URL dedup, and
// a stable sort by score. It never returns an error; every per-category and
// per-hit failure just shrinks the result.
func Collect(ctx context.Context, src Searcher, tax *taxonomy.Taxonomy, win window.Window, opts Options) []Article {
	startTime := time.Now()
	metrics.Global.Reset()
	defer func() {
		metrics.Global.RecordProcessingTime(time.Since(startTime))
		metrics.Global.SetLastRun()
	}()

	vocab := tax.Flatten()
	byURL := make(map[string]int)
	var results []Article

	for _, q := range buildQueries(tax, opts.Mode) {
		metrics.Global.IncrementQueriesIssued()

		hits, err := src.Search(ctx, q.text)
		if err != nil {
			logger.Warn("search failed, skipping query", "category", q.category, "error", err)
			metrics.Global.IncrementQueryFailures()
			if opts.Progress != nil {
				opts.Progress(q.category, -1)
			}
			continue
		}
		logger.Debug("search returned", "category", q.category, "hits", len(hits))
		if opts.Progress != nil {
			opts.Progress(q.category, len(hits))
		}

		for _, h := range hits {
			metrics.Global.IncrementHitsProcessed()

			published, err := time.Parse(PublishedLayout, h.Published)
			if err != nil {
				metrics.Global.IncrementHitsUnparsableDate()
				continue
			}
			if !win.Contains(published) {
				metrics.Global.IncrementHitsOutsideWindow()
				continue
			}
			if titleExcluded(h.Title, opts.ExcludeTitleTerms) {
				metrics.Global.IncrementHitsExcluded()
				continue
			}

			rec := Article{
				Category:  q.category,
				Publisher: h.Publisher,
				Date:      dateOnly(published),
				Title:     h.Title,
				URL:       h.URL,
				Score:     Score(h.Title, h.Description, vocab),
			}

			if i, dup := byURL[h.URL]; dup {
				metrics.Global.IncrementDuplicatesFiltered()
				switch opts.Dedup {
				case DedupHighestScore:
					if rec.Score > results[i].Score {
						results[i] = rec
					}
				default:
					// The later occurrence replaces the earlier one in place,
					// so the survivor keeps the earlier processing position.
					results[i] = rec
				}
				continue
			}
			byURL[h.URL] = len(results)
			results = append(results, rec)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	metrics.Global.AddArticlesKept(len(results))
	return results
}

// Score awards 2 points per vocabulary keyword found in the title and 1 point
// per keyword found only in title+description. Both sides are case-folded and
// stripped of all whitespace first, so "식품 매출" matches "식품매출 급감".
// Keywords occurring in several categories count once per occurrence.
func Score(title, description string, vocab []string) int {
	titleNorm := normalize(title)
	bodyNorm := normalize(title + " " + description)

	score := 0
	for _, kw := range vocab {
		k := normalize(kw)
		if k == "" {
			continue
		}
		if strings.Contains(titleNorm, k) {
			score += 2
		} else if strings.Contains(bodyNorm, k) {
			score++
		}
	}
	return score
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

func titleExcluded(title string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(title, term) {
			return true
		}
	}
	return false
}

// buildQueries expands the taxonomy into search queries. Categories with no
// keywords contribute nothing. In per-category mode the category name joins
// its keywords in one quoted OR-group, which cuts external calls by roughly
// the keyword count per category without changing scoring.
func buildQueries(tax *taxonomy.Taxonomy, mode QueryMode) []searchQuery {
	var queries []searchQuery
	for _, c := range tax.Categories {
		if len(c.Keywords) == 0 {
			continue
		}
		if mode == QueryPerKeyword {
			for _, kw := range c.Keywords {
				queries = append(queries, searchQuery{category: c.Name, text: quote(kw)})
			}
			continue
		}
		parts := make([]string, 0, len(c.Keywords)+1)
		parts = append(parts, quote(c.Name))
		for _, kw := range c.Keywords {
			parts = append(parts, quote(kw))
		}
		queries = append(queries, searchQuery{category: c.Name, text: strings.Join(parts, " OR ")})
	}
	return queries
}

func quote(s string) string {
	return `"` + s + `"`
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
