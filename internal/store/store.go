package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"roadwatch/internal/aggregate"
)

// DayRecord is the cumulative data persisted for one date.
type DayRecord struct {
	Chronological []aggregate.Row              `json:"chronological"`
	CarSummary    map[string][]aggregate.Entry `json:"car_summary"`
}

// Store is the cumulative JSON document, keyed by date string. Merging
// only ever appends: prior entries are never rewritten or deduplicated,
// so processing the same export twice doubles that date's records.
type Store struct {
	path string
	days map[string]*DayRecord
	log  *zap.Logger
}

// Load reads the store at path. A missing file yields an empty store;
// any other failure is returned to the caller.
func Load(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{path: path, days: make(map[string]*DayRecord), log: log}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug("store file absent, starting empty", zap.String("path", path))
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(b, &s.days); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return s, nil
}

// Path returns the file the store was loaded from.
func (s *Store) Path() string { return s.path }

// Day returns the record for date, or nil if none is stored.
func (s *Store) Day(date string) *DayRecord { return s.days[date] }

// Dates returns all stored dates, sorted.
func (s *Store) Dates() []string {
	dates := make([]string, 0, len(s.days))
	for d := range s.days {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Merge appends one run's chronological rows and per-car entries into
// the date's bucket, creating the bucket if absent.
func (s *Store) Merge(date string, rows []aggregate.Row, sum *aggregate.Summary) {
	day := s.days[date]
	if day == nil {
		day = &DayRecord{CarSummary: make(map[string][]aggregate.Entry)}
		s.days[date] = day
	}
	day.Chronological = append(day.Chronological, rows...)
	for _, car := range sum.Cars() {
		day.CarSummary[car] = append(day.CarSummary[car], sum.Entries(car)...)
	}
}

// Save rewrites the whole document. The write goes to a temp file in
// the same directory and is renamed over the target, so a crash cannot
// leave a truncated store behind. HTML escaping is off, so Hebrew text
// stays readable in the file.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure store dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(s.days); err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store: %w", err)
	}

	s.log.Debug("store saved",
		zap.String("path", s.path),
		zap.Int("dates", len(s.days)))
	return nil
}

// Result is one car-summary match from Search.
type Result struct {
	Date    string
	Car     string
	Entries []aggregate.Entry
}

// Search returns stored car descriptions containing query,
// case-insensitively. date narrows the search to one bucket; limit 0
// means no limit. Results come back in date order, cars sorted within
// a date.
func (s *Store) Search(query, date string, limit int) []Result {
	q := strings.ToLower(query)
	var out []Result
	for _, d := range s.Dates() {
		if date != "" && d != date {
			continue
		}
		day := s.days[d]
		cars := make([]string, 0, len(day.CarSummary))
		for car := range day.CarSummary {
			cars = append(cars, car)
		}
		sort.Strings(cars)
		for _, car := range cars {
			if !strings.Contains(strings.ToLower(car), q) {
				continue
			}
			out = append(out, Result{Date: d, Car: car, Entries: day.CarSummary[car]})
			if limit > 0 && len(out) >= limit {
				return out
			}
		}
	}
	return out
}

// Stats returns the number of stored dates and chronological sightings.
func (s *Store) Stats() (dates, sightings int) {
	for _, day := range s.days {
		sightings += len(day.Chronological)
	}
	return len(s.days), sightings
}
