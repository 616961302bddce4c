package library_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/songshelf/internal/catalog"
	"github.com/blackwell-systems/songshelf/internal/library"
	"github.com/blackwell-systems/songshelf/internal/logger"
)

var errTransport = errors.New("network unreachable")

// scriptedSource returns the next scripted result on every call.
type scriptedSource struct {
	mu      sync.Mutex
	results []result
	calls   int
}

type result struct {
	rows []catalog.Row
	err  error
}

func (s *scriptedSource) LoadRows(ctx context.Context) ([]catalog.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[s.calls]
	s.calls++
	return r.rows, r.err
}

func rowsV1() []catalog.Row {
	return []catalog.Row{
		{"歌名": "X", "歌手": "Young", "語言": "國語", "分類": "流行, 搖滾"},
		{"歌名": "Z", "歌手": "West", "語言": "English", "分類": "流行"},
		{"歌名": "Q", "語言": "國語", "分類": ""},
	}
}

func newLib(src library.Source) *library.Library {
	return library.New(src, library.WithLogger(logger.Discard()))
}

func TestNew_EmptyView(t *testing.T) {
	lib := newLib(&scriptedSource{})
	v := lib.View()
	assert.Empty(t, v.Songs)
	assert.Equal(t, 0, v.Total)
	assert.NotNil(t, v.Registry)
	assert.Equal(t, catalog.AllLanguages, v.Filter.Language)
	assert.Nil(t, v.Summary.TopCategory)
}

func TestReload_Success(t *testing.T) {
	lib := newLib(&scriptedSource{results: []result{{rows: rowsV1()}}})
	require.NoError(t, lib.Reload(context.Background()))

	st := lib.Status()
	assert.False(t, st.Loading)
	assert.NoError(t, st.Err)
	assert.Equal(t, 1, st.Loads)
	assert.False(t, st.LoadedAt.IsZero())

	v := lib.View()
	assert.Len(t, v.Songs, 3)
	assert.Equal(t, 3, v.Summary.TotalSongs)
	assert.Equal(t, []string{"國語", "English"}, v.Registry.Languages)
	assert.Equal(t, map[string]int{"流行": 2, "搖滾": 1}, v.CategoryCounts.Map())
	assert.Equal(t, catalog.Stat{Name: "國語", Count: 2}, v.Summary.TopLanguages[0])
	assert.Equal(t, "流行", v.Summary.TopCategory.Name)
}

func TestReload_FailureKeepsPreviousSnapshot(t *testing.T) {
	src := &scriptedSource{results: []result{
		{rows: rowsV1()},
		{err: errTransport},
		{rows: rowsV1()[:1]},
	}}
	lib := newLib(src)
	require.NoError(t, lib.Reload(context.Background()))

	err := lib.Reload(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errTransport)
	assert.ErrorIs(t, lib.Status().Err, errTransport)
	assert.Len(t, lib.View().Songs, 3, "previous songs must survive a failed reload")

	// retry re-invokes the source and clears the error
	require.NoError(t, lib.Reload(context.Background()))
	assert.NoError(t, lib.Status().Err)
	assert.Len(t, lib.View().Songs, 1)
	assert.Equal(t, 3, src.calls)
	assert.Equal(t, 2, lib.Status().Loads)
}

func TestReload_FirstLoadFailureLeavesEmpty(t *testing.T) {
	lib := newLib(&scriptedSource{results: []result{{err: errTransport}}})
	require.Error(t, lib.Reload(context.Background()))
	assert.Empty(t, lib.View().Songs)
	assert.Equal(t, 0, lib.Status().Loads)
}

func TestReload_KeepsFilterState(t *testing.T) {
	src := &scriptedSource{results: []result{{rows: rowsV1()}, {rows: rowsV1()}}}
	lib := newLib(src)
	require.NoError(t, lib.Reload(context.Background()))

	lib.SetLanguage("國語")
	lib.ToggleCategory("搖滾")
	require.NoError(t, lib.Reload(context.Background()))

	v := lib.View()
	assert.Equal(t, "國語", v.Filter.Language)
	assert.Equal(t, []string{"搖滾"}, v.Filter.Categories)
	require.Len(t, v.Songs, 1)
	assert.Equal(t, "X", v.Songs[0].Title)
}

func TestReload_ReplacesRegistryWholesale(t *testing.T) {
	src := &scriptedSource{results: []result{
		{rows: rowsV1()},
		{rows: []catalog.Row{{"title": "new", "category": "jazz"}}},
	}}
	lib := newLib(src)
	require.NoError(t, lib.Reload(context.Background()))
	require.NoError(t, lib.Reload(context.Background()))

	reg := lib.Registry()
	assert.Equal(t, []string{"jazz"}, reg.Categories)
	assert.False(t, reg.HasCategory("流行"))
	rank, ok := reg.Rank("jazz")
	assert.True(t, ok)
	assert.Equal(t, catalog.AdHocRankBase, rank)
}

func TestMutations_RecomputeView(t *testing.T) {
	lib := newLib(&scriptedSource{results: []result{{rows: rowsV1()}}})
	require.NoError(t, lib.Reload(context.Background()))

	lib.ToggleCategory("流行")
	v := lib.View()
	assert.Len(t, v.Songs, 2)
	assert.Equal(t, map[string]int{"流行": 2, "搖滾": 1}, v.CategoryCounts.Map())

	lib.ToggleCategory("搖滾")
	v = lib.View()
	require.Len(t, v.Songs, 1)
	assert.Equal(t, map[string]int{"流行": 1, "搖滾": 1}, v.CategoryCounts.Map())
	// headline stats stay over the full set
	assert.Equal(t, 3, v.Summary.TotalSongs)
	assert.Equal(t, 1, v.FilteredSummary.TotalSongs)

	lib.ClearCategories()
	lib.SetSearch("you")
	v = lib.View()
	require.Len(t, v.Songs, 1)
	assert.Equal(t, "Young", v.Songs[0].Artist)

	lib.SetSearch("")
	lib.SetLanguage("English")
	v = lib.View()
	require.Len(t, v.Songs, 1)
	assert.Equal(t, "Z", v.Songs[0].Title)

	lib.SetLanguage(catalog.AllLanguages)
	assert.Len(t, lib.View().Songs, 3)
}

func TestFilter_ReturnsCopy(t *testing.T) {
	lib := newLib(&scriptedSource{})
	lib.ToggleCategory("a")
	f := lib.Filter()
	f.Categories[0] = "mutated"
	assert.Equal(t, []string{"a"}, lib.Filter().Categories)
}

func TestSetFilter(t *testing.T) {
	lib := newLib(&scriptedSource{results: []result{{rows: rowsV1()}}})
	require.NoError(t, lib.Reload(context.Background()))
	lib.SetFilter(catalog.Filter{Language: "國語", Categories: []string{"流行"}})
	v := lib.View()
	require.Len(t, v.Songs, 1)
	assert.Equal(t, "X", v.Songs[0].Title)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.yml")
	require.NoError(t, os.WriteFile(path, []byte(`[{"歌名":"X","分類":"流行"}]`), 0644))

	lib := newLib(library.FileSource{Path: path})
	require.NoError(t, lib.Reload(context.Background()))
	assert.Len(t, lib.View().Songs, 1)

	missing := newLib(library.FileSource{Path: filepath.Join(t.TempDir(), "nope.yml")})
	assert.Error(t, missing.Reload(context.Background()))
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := library.FileSource{Path: "unused"}.LoadRows(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReload_OverlappingLastFinishWins(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)
	calls := 0
	var mu sync.Mutex
	src := library.SourceFunc(func(ctx context.Context) ([]catalog.Row, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		started <- struct{}{}
		if n == 1 {
			<-release
			return []catalog.Row{{"title": "slow"}}, nil
		}
		return []catalog.Row{{"title": "fast"}}, nil
	})
	lib := newLib(src)

	done := make(chan error, 1)
	go func() { done <- lib.Reload(context.Background()) }()
	<-started

	require.NoError(t, lib.Reload(context.Background()))
	assert.True(t, lib.Status().Loading, "first reload still in flight")
	assert.Equal(t, "fast", lib.View().Songs[0].Title)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, lib.Status().Loading)
	assert.Equal(t, "slow", lib.View().Songs[0].Title)
}
