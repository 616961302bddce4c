// Package library owns the loaded song snapshot and the user's filter state,
// and recomputes the visible view from them.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

// Status describes the most recent load.
type Status struct {
	Loading  bool
	Err      error // last load failure; nil after a success
	LoadedAt time.Time
	Loads    int // successful loads
}

// View is everything a renderer needs for one frame.
type View struct {
	Songs           []catalog.Song    `json:"songs"`
	CategoryCounts  catalog.Counts    `json:"category_counts"` // scoped to Songs
	Registry        *catalog.Registry `json:"-"`
	Summary         catalog.Summary   `json:"summary"`          // over the full set
	FilteredSummary catalog.Summary   `json:"filtered_summary"` // over Songs
	Filter          catalog.Filter    `json:"filter"`
	Total           int               `json:"total"`
}

// snapshot is replaced wholesale on every successful load.
type snapshot struct {
	songs    []catalog.Song
	registry *catalog.Registry
}

// Library is the state container behind every front end.
type Library struct {
	src  Source
	log  *slog.Logger
	topN int

	mu       sync.RWMutex
	snap     snapshot
	filter   catalog.Filter
	status   Status
	inFlight int
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(lib *Library) { lib.log = l }
}

// WithTopLanguages sets how many languages summaries report.
func WithTopLanguages(n int) Option {
	return func(lib *Library) { lib.topN = n }
}

// New creates an empty Library reading from src. Call Reload to load songs.
func New(src Source, opts ...Option) *Library {
	lib := &Library{
		src:    src,
		log:    slog.Default(),
		topN:   catalog.DefaultTopLanguages,
		filter: catalog.NewFilter(),
		snap:   snapshot{registry: catalog.ExtractFacets(nil, nil)},
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Reload fetches rows from the source and, on success, replaces the songs and
// registry. On failure the previous snapshot is kept and the error recorded.
// The filter is never reset by a reload.
//
// Overlapping reloads are not serialized: the one that finishes last wins.
// An overlap is logged so the race is visible.
func (l *Library) Reload(ctx context.Context) error {
	l.mu.Lock()
	l.inFlight++
	if l.inFlight > 1 {
		l.log.Warn("reload started while another is in flight; last to finish wins", "in_flight", l.inFlight)
	}
	l.status.Loading = true
	l.mu.Unlock()

	start := time.Now()
	rows, err := l.src.LoadRows(ctx)

	var next snapshot
	if err == nil {
		songs := catalog.NormalizeAll(rows)
		next = snapshot{songs: songs, registry: catalog.ExtractFacets(songs, rows)}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.inFlight--
	l.status.Loading = l.inFlight > 0

	if err != nil {
		l.status.Err = err
		l.log.Error("loading songs failed", "err", err, "kept_songs", len(l.snap.songs))
		return fmt.Errorf("loading songs: %w", err)
	}

	l.snap = next
	l.status.Err = nil
	l.status.LoadedAt = time.Now()
	l.status.Loads++
	l.log.Info("songs loaded",
		"rows", len(rows),
		"languages", len(next.registry.Languages),
		"categories", len(next.registry.Categories),
		"elapsed", time.Since(start),
	)
	return nil
}

// Status returns the state of the most recent load.
func (l *Library) Status() Status {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status
}

// Songs returns the full song set of the current snapshot.
func (l *Library) Songs() []catalog.Song {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap.songs
}

// Registry returns the facets of the current snapshot.
func (l *Library) Registry() *catalog.Registry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snap.registry
}

// Filter returns a copy of the current filter state.
func (l *Library) Filter() catalog.Filter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneFilter(l.filter)
}

// SetSearch replaces the search term.
func (l *Library) SetSearch(term string) {
	l.update(func(f *catalog.Filter) { f.SetSearch(term) })
}

// SetLanguage selects one language, or catalog.AllLanguages.
func (l *Library) SetLanguage(lang string) {
	l.update(func(f *catalog.Filter) { f.SetLanguage(lang) })
}

// ToggleCategory adds or removes one category from the selection.
func (l *Library) ToggleCategory(cat string) {
	l.update(func(f *catalog.Filter) { f.ToggleCategory(cat) })
}

// ClearCategories empties the category selection.
func (l *Library) ClearCategories() {
	l.update(func(f *catalog.Filter) { f.ClearCategories() })
}

// SetFilter replaces the whole filter state.
func (l *Library) SetFilter(f catalog.Filter) {
	l.update(func(cur *catalog.Filter) { *cur = cloneFilter(f) })
}

func (l *Library) update(fn func(*catalog.Filter)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.filter)
}

// View recomputes the filtered songs, scoped category counts and summaries
// from scratch.
func (l *Library) View() View {
	l.mu.RLock()
	snap := l.snap
	f := cloneFilter(l.filter)
	topN := l.topN
	l.mu.RUnlock()

	res := f.Run(snap.songs)
	return View{
		Songs:          res.Songs,
		CategoryCounts: res.CategoryCounts,
		Registry:       snap.registry,
		Summary: catalog.Summarize(snap.songs,
			snap.registry.LanguageCounts, snap.registry.Counts, topN),
		FilteredSummary: catalog.Summarize(res.Songs,
			catalog.CountLanguages(res.Songs), res.CategoryCounts, topN),
		Filter: f,
		Total:  len(snap.songs),
	}
}

func cloneFilter(f catalog.Filter) catalog.Filter {
	if f.Categories != nil {
		f.Categories = append([]string(nil), f.Categories...)
	}
	return f
}
