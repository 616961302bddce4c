package catalog_test

import (
	"testing"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

var sampleYAML = []byte(`
- 歌名: "Yellow"
  歌手: "Coldplay"
  語言: "English"
  分類: "Rock, Ballad"
  分類項目: "Ballad"
- 歌名: "小幸運"
  歌手: "田馥甄"
  語言: "國語"
  分類: "流行"
  備註: "電影主題曲"
- title: "Lemon"
  artist: "Young Kenshi"
  language: "日語"
  category: "流行, Ballad"
`)

// --- Parse / Marshal round-trip ---

func TestParse_ValidYAML(t *testing.T) {
	rows, err := catalog.Parse(sampleYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if got := rows[1].Lookup(catalog.TitleKeys...); got != "小幸運" {
		t.Errorf("rows[1] title = %q, want %q", got, "小幸運")
	}
}

func TestParse_JSON(t *testing.T) {
	rows, err := catalog.Parse([]byte(`[{"歌名":"X","歌手":"Y"},{"title":"Z","notes":42}]`))
	if err != nil {
		t.Fatalf("Parse JSON: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if got := rows[1].Lookup(catalog.NotesKeys...); got != "42" {
		t.Errorf("numeric notes = %q, want %q", got, "42")
	}
}

func TestParse_Empty(t *testing.T) {
	rows, err := catalog.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestParse_EmptyList(t *testing.T) {
	rows, err := catalog.Parse([]byte("[]\n"))
	if err != nil {
		t.Fatalf("Parse []: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := catalog.Parse([]byte(":: bad yaml ["))
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	rows, err := catalog.Parse(sampleYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := catalog.Marshal(rows)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	rows2, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if len(rows2) != len(rows) {
		t.Fatalf("round-trip length: got %d, want %d", len(rows2), len(rows))
	}
	for i := range rows {
		a := catalog.Normalize(rows[i], i)
		b := catalog.Normalize(rows2[i], i)
		if a.Title != b.Title || a.Category != b.Category {
			t.Errorf("[%d] mismatch: %+v vs %+v", i, a, b)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	rows, _ := catalog.Parse(sampleYAML)
	path := t.TempDir() + "/rows.yml"
	if err := catalog.Save(path, rows); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 rows after load, got %d", len(got))
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := catalog.Load("/no/such/rows.yml"); err == nil {
		t.Error("expected error for missing rows file, got nil")
	}
}

// --- Filter ---

func sampleSongs(t *testing.T) []catalog.Song {
	t.Helper()
	rows, err := catalog.Parse(sampleYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return catalog.NormalizeAll(rows)
}

func titles(songs []catalog.Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Title
	}
	return out
}

func TestFilter_Empty(t *testing.T) {
	songs := sampleSongs(t)
	result := catalog.NewFilter().Apply(songs)
	if len(result) != 3 {
		t.Errorf("empty filter should return all songs, got %d", len(result))
	}
}

func TestFilter_ByLanguage(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Language: "日語"}
	result := f.Apply(songs)
	if len(result) != 1 || result[0].Title != "Lemon" {
		t.Errorf("language filter: got %v", titles(result))
	}
}

func TestFilter_ByLanguageIsCaseSensitive(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Language: "english"}
	if result := f.Apply(songs); len(result) != 0 {
		t.Errorf("language filter should be exact, got %v", titles(result))
	}
}

func TestFilter_ByCategory(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Categories: []string{"Ballad"}}
	result := f.Apply(songs)
	if len(result) != 2 {
		t.Errorf("category filter: got %v", titles(result))
	}
}

func TestFilter_BySearch_Notes(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Search: "主題曲"}
	result := f.Apply(songs)
	if len(result) != 1 || result[0].Title != "小幸運" {
		t.Errorf("search by notes failed: got %v", titles(result))
	}
}

func TestFilter_BySearch_CaseInsensitive(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Search: "COLDPLAY"}
	result := f.Apply(songs)
	if len(result) != 1 || result[0].Title != "Yellow" {
		t.Errorf("case-insensitive search failed: got %v", titles(result))
	}
}

func TestFilter_BySearch_RawCategory(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Search: "rock, ball"}
	result := f.Apply(songs)
	if len(result) != 1 || result[0].Title != "Yellow" {
		t.Errorf("search by raw category failed: got %v", titles(result))
	}
}

func TestFilter_WhitespaceSearchMatchesAll(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Search: "   "}
	if result := f.Apply(songs); len(result) != 3 {
		t.Errorf("whitespace search should match all, got %d", len(result))
	}
}

func TestFilter_NoMatch(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Search: "zzznomatch"}
	if result := f.Apply(songs); len(result) != 0 {
		t.Errorf("expected 0 results, got %d", len(result))
	}
}

func TestFilter_Combined_NoMatch(t *testing.T) {
	songs := sampleSongs(t)
	f := catalog.Filter{Language: "國語", Categories: []string{"Ballad"}}
	if result := f.Apply(songs); len(result) != 0 {
		t.Errorf("combined filter with no match: expected 0, got %d", len(result))
	}
}

// --- ByID ---

func TestByID_Found(t *testing.T) {
	songs := sampleSongs(t)
	s := catalog.ByID(songs, 2)
	if s == nil {
		t.Fatal("ByID returned nil for existing song")
	}
	if s.Title != "小幸運" {
		t.Errorf("Title = %q, want %q", s.Title, "小幸運")
	}
}

func TestByID_NotFound(t *testing.T) {
	songs := sampleSongs(t)
	if s := catalog.ByID(songs, 99); s != nil {
		t.Errorf("ByID returned non-nil for missing song")
	}
}
