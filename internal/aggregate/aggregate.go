package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"roadwatch/internal/parse"
)

// Row is one line of the chronological table.
type Row struct {
	Time      string `json:"time"`
	Reporter  string `json:"reporter"`
	Direction string `json:"direction"`
	Car       string `json:"car"`
}

// Entry is one sighting listed under a car heading.
type Entry struct {
	Time      string `json:"time"`
	Reporter  string `json:"reporter"`
	Direction string `json:"direction"`
}

// Order selects how the chronological table sorts its time column.
type Order int

const (
	// OrderLexical compares time strings byte-wise, matching the
	// original report generator: "10:00:00" sorts before "9:00:00".
	OrderLexical Order = iota
	// OrderClock compares hours, minutes and seconds numerically.
	OrderClock
)

func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "lexical":
		return OrderLexical, nil
	case "clock", "chronological":
		return OrderClock, nil
	}
	return 0, fmt.Errorf("unknown sort order %q (want lexical or clock)", s)
}

// Chronological returns the reports as table rows in ascending time
// order. The sort is stable, so equal times keep input order.
func Chronological(reports []parse.Report, order Order) []Row {
	rows := make([]Row, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, Row{
			Time:      r.Time,
			Reporter:  r.Reporter,
			Direction: r.Direction,
			Car:       r.Car,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if order == OrderClock {
			return clockLess(rows[i].Time, rows[j].Time)
		}
		return rows[i].Time < rows[j].Time
	})
	return rows
}

func clockLess(a, b string) bool {
	as, bs := strings.Split(a, ":"), strings.Split(b, ":")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, _ := strconv.Atoi(as[i])
		bi, _ := strconv.Atoi(bs[i])
		if ai != bi {
			return ai < bi
		}
	}
	return len(as) < len(bs)
}

// Summary groups sightings by car description, preserving first-seen
// car order and input order within each car.
type Summary struct {
	cars    []string
	entries map[string][]Entry
}

func NewSummary() *Summary {
	return &Summary{entries: make(map[string][]Entry)}
}

// Add appends one entry under car, registering the car on first use.
func (s *Summary) Add(car string, e Entry) {
	if _, seen := s.entries[car]; !seen {
		s.cars = append(s.cars, car)
	}
	s.entries[car] = append(s.entries[car], e)
}

// Cars returns the car descriptions in first-seen order.
func (s *Summary) Cars() []string { return s.cars }

// Entries returns the sightings recorded for car, in input order.
func (s *Summary) Entries(car string) []Entry { return s.entries[car] }

func (s *Summary) Len() int { return len(s.cars) }

// GroupByCar builds the per-car summary view of the reports.
func GroupByCar(reports []parse.Report) *Summary {
	s := NewSummary()
	for _, r := range reports {
		s.Add(r.Car, Entry{Time: r.Time, Reporter: r.Reporter, Direction: r.Direction})
	}
	return s
}
