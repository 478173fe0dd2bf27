// Package app owns the session state of one operator: the loaded taxonomy,
// the results of the last collection run, and the current picks. The CLI
// layer renders this state; it never holds state of its own.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/minafoods/newsclip/internal/config"
	"github.com/minafoods/newsclip/internal/export"
	"github.com/minafoods/newsclip/internal/gnews"
	"github.com/minafoods/newsclip/internal/pipeline"
	"github.com/minafoods/newsclip/internal/selection"
	"github.com/minafoods/newsclip/internal/taxonomy"
	"github.com/minafoods/newsclip/internal/window"
)

type App struct {
	cfg      *config.Config
	store    *taxonomy.Store
	Taxonomy *taxonomy.Taxonomy
	Searcher pipeline.Searcher
	Window   window.Window
	Results  []pipeline.Article
	Picks    *selection.Set

	// Progress, when set, receives one call per executed query so the
	// presentation layer can show per-category status during Collect.
	Progress func(category string, hits int)
}

func New(cfg *config.Config) *App {
	store := taxonomy.NewStore(cfg.KeywordsFile)
	return &App{
		cfg:      cfg,
		store:    store,
		Taxonomy: store.Load(),
		Searcher: gnews.New(cfg),
		Window:   window.Current(time.Now()),
		Picks:    selection.New(),
	}
}

func (a *App) Store() *taxonomy.Store {
	return a.store
}

// Collect refreshes the reporting window, runs the pipeline, and replaces the
// previous results. Any prior picks are dropped with them.
func (a *App) Collect(ctx context.Context) []pipeline.Article {
	a.Window = window.Current(time.Now())
	a.Results = pipeline.Collect(ctx, a.Searcher, a.Taxonomy, a.Window, a.options())
	a.Picks.Clear()
	return a.Results
}

func (a *App) options() pipeline.Options {
	opts := pipeline.DefaultOptions()
	if a.cfg.DedupPolicy == "score" {
		opts.Dedup = pipeline.DedupHighestScore
	}
	if a.cfg.QueryMode == "keyword" {
		opts.Mode = pipeline.QueryPerKeyword
	}
	opts.Progress = a.Progress
	return opts
}

// Pick flags results by their 1-based position in the ranked list.
func (a *App) Pick(indices ...int) error {
	for _, i := range indices {
		if i < 1 || i > len(a.Results) {
			return fmt.Errorf("pick %d out of range, have %d results", i, len(a.Results))
		}
		a.Picks.Add(a.Results[i-1])
	}
	return nil
}

// PickAll flags every result of the last run.
func (a *App) PickAll() {
	for _, r := range a.Results {
		a.Picks.Add(r)
	}
}

// Export serializes the current picks to workbook bytes plus the suggested
// file name for this window. Zero picks still produce a valid workbook.
func (a *App) Export() ([]byte, string, error) {
	data, err := export.Write(a.Picks.Items())
	if err != nil {
		return nil, "", err
	}
	return data, export.FileName(a.Window.End), nil
}
