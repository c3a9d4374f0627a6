// Package csvstore keeps the entry log as a flat CSV file with a header row.
package csvstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"wellbeing-tracker/internal/logger"
	"wellbeing-tracker/internal/utils"
	"wellbeing-tracker/internal/wellbeing"
)

var Header = []string{"timestamp", "stress", "energy", "productivity"}

type Store struct {
	path   string
	loc    *time.Location
	logger logger.Logger
}

func New(path string, loc *time.Location, log logger.Logger) *Store {
	return &Store{path: path, loc: loc, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Init creates the file with its header unless it already exists.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	row, err := encodeRow(Header)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write(row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	s.logger.Infof("✅ Entry log created: %s", s.path)
	return nil
}

// Append writes the entry as a single row in one write call.
func (s *Store) Append(_ context.Context, entry wellbeing.Entry) error {
	row, err := encodeRow([]string{
		utils.FormatTimestamp(entry.Timestamp.In(s.loc)),
		strconv.Itoa(int(entry.Stress)),
		strconv.Itoa(int(entry.Energy)),
		strconv.Itoa(int(entry.Productivity)),
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", wellbeing.ErrStorageUnavailable, s.path, err)
	}
	defer f.Close()

	terminated, err := endsWithNewline(f)
	if err != nil {
		return fmt.Errorf("%w: inspect %s: %w", wellbeing.ErrStorageUnavailable, s.path, err)
	}
	if !terminated {
		s.logger.Warnf("⚠️ %s does not end with a newline, starting a new line", s.path)
		row = append([]byte("\n"), row...)
	}

	if _, err := f.Write(row); err != nil {
		return fmt.Errorf("%w: append to %s: %w", wellbeing.ErrStorageUnavailable, s.path, err)
	}
	return nil
}

// endsWithNewline reports whether the file is empty or its last byte is '\n'.
func endsWithNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] == '\n', nil
}

// ReadAll returns every parseable row in file order. Rows that cannot be
// parsed are skipped and logged.
func (s *Store) ReadAll(_ context.Context) ([]wellbeing.Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", wellbeing.ErrStorageUnavailable, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	entries := []wellbeing.Entry{}
	line := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			s.logger.Warnf("⚠️ Skipping row %d of %s: %v", line, s.path, err)
			continue
		}
		if line == 1 && isHeader(record) {
			continue
		}

		entry, err := s.parseRecord(record)
		if err != nil {
			s.logger.Warnf("⚠️ Skipping row %d of %s: %v", line, s.path, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *Store) parseRecord(record []string) (wellbeing.Entry, error) {
	if len(record) != len(Header) {
		return wellbeing.Entry{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(record))
	}

	ts, err := utils.ParseTimestamp(record[0], s.loc)
	if err != nil {
		return wellbeing.Entry{}, err
	}

	var ratings [3]wellbeing.Rating
	for i, field := range record[1:] {
		ratings[i], err = wellbeing.ParseRating(field)
		if err != nil {
			return wellbeing.Entry{}, fmt.Errorf("%s: %w", Header[i+1], err)
		}
	}

	return wellbeing.Entry{
		Timestamp:    ts,
		Stress:       ratings[0],
		Energy:       ratings[1],
		Productivity: ratings[2],
	}, nil
}

func isHeader(record []string) bool {
	return len(record) > 0 && record[0] == Header[0]
}

func encodeRow(fields []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes entries in the log layout, header first.
func WriteCSV(w io.Writer, entries []wellbeing.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{
			utils.FormatTimestamp(e.Timestamp),
			strconv.Itoa(int(e.Stress)),
			strconv.Itoa(int(e.Energy)),
			strconv.Itoa(int(e.Productivity)),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
