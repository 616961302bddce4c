package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

// SongRecord is the Parquet row layout of one song.
type SongRecord struct {
	ID         int64    `parquet:"id"`
	Title      string   `parquet:"title"`
	Artist     string   `parquet:"artist"`
	Language   string   `parquet:"language"`
	Category   string   `parquet:"category"`
	Notes      string   `parquet:"notes"`
	Categories []string `parquet:"categories,list"`
}

// NewSongRecord converts a song. Empty category tokens are dropped.
func NewSongRecord(s catalog.Song) SongRecord {
	rec := SongRecord{
		ID:       int64(s.ID),
		Title:    s.Title,
		Artist:   s.Artist,
		Language: s.Language,
		Category: s.Category,
		Notes:    s.Notes,
	}
	for _, c := range s.Categories {
		if c != "" {
			rec.Categories = append(rec.Categories, c)
		}
	}
	return rec
}

// WriteParquet writes songs as a single Parquet file.
func WriteParquet(w io.Writer, songs []catalog.Song) error {
	records := make([]SongRecord, len(songs))
	for i, s := range songs {
		records[i] = NewSongRecord(s)
	}

	pw := parquet.NewGenericWriter[SongRecord](w)
	if _, err := pw.Write(records); err != nil {
		_ = pw.Close()
		return fmt.Errorf("writing parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("closing parquet writer: %w", err)
	}
	return nil
}

// ReadParquet reads back a file written by WriteParquet.
func ReadParquet(r io.ReaderAt, size int64) ([]SongRecord, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening parquet: %w", err)
	}

	reader := parquet.NewGenericReader[SongRecord](pf)
	defer reader.Close()

	var records []SongRecord
	batch := make([]SongRecord, 128)
	for {
		n, err := reader.Read(batch)
		records = append(records, batch[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading parquet rows: %w", err)
		}
	}
	return records, nil
}
