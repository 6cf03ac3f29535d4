package parse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	p := New(Options{}, nil, nil)

	t.Run("well-formed line", func(t *testing.T) {
		r, ok := p.ParseLine("[10.6.2024, 14:23:05] Dana: דיווח: North red sedan plate 123")
		require.True(t, ok)
		assert.Equal(t, Report{
			Date:      "10.6.2024",
			Time:      "14:23:05",
			Reporter:  "Dana",
			Direction: "North",
			Car:       "red sedan plate 123",
		}, r)
	})

	t.Run("hebrew fields", func(t *testing.T) {
		r, ok := p.ParseLine("[10.6.2024, 9:05:00] דנה: דיווח: צפון מאזדה אדומה")
		require.True(t, ok)
		assert.Equal(t, "דנה", r.Reporter)
		assert.Equal(t, "צפון", r.Direction)
		assert.Equal(t, "מאזדה אדומה", r.Car)
	})

	t.Run("is pure", func(t *testing.T) {
		line := "[10.6.2024, 14:23:05] Dana: דיווח: North red sedan plate 123"
		a, okA := p.ParseLine(line)
		b, okB := p.ParseLine(line)
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, a, b)
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		_, ok := p.ParseLine("  [10.6.2024, 14:23:05] Dana: דיווח: North red sedan\n")
		assert.True(t, ok)
	})

	t.Run("rejects missing marker", func(t *testing.T) {
		_, ok := p.ParseLine("[10.6.2024, 14:23:05] Dana: North red sedan")
		assert.False(t, ok)
	})

	t.Run("rejects truncated time", func(t *testing.T) {
		_, ok := p.ParseLine("[10.6.2024, 14:23] Dana: דיווח: North red sedan")
		assert.False(t, ok)
	})

	t.Run("rejects free text", func(t *testing.T) {
		_, ok := p.ParseLine("anyone seen the red sedan today?")
		assert.False(t, ok)
	})
}

func TestParseLine_CustomMarker(t *testing.T) {
	p := New(Options{Marker: "report"}, nil, nil)

	r, ok := p.ParseLine("[10.6.2024, 14:23:05] Dana: report: North red sedan")
	require.True(t, ok)
	assert.Equal(t, "North", r.Direction)

	_, ok = p.ParseLine("[10.6.2024, 14:23:05] Dana: דיווח: North red sedan")
	assert.False(t, ok)
}

func TestParseLine_ShortTime(t *testing.T) {
	p := New(Options{ShortTime: true}, nil, nil)

	r, ok := p.ParseLine("[10.6.2024, 14:23:05] Dana: דיווח: North red sedan")
	require.True(t, ok)
	assert.Equal(t, "14:23", r.Time)
}

func TestParseLine_LegacyReverse(t *testing.T) {
	p := New(Options{LegacyReverse: true}, nil, nil)

	r, ok := p.ParseLine("[10.6.2024, 14:23:05] דנה: דיווח: צפון abc")
	require.True(t, ok)
	assert.Equal(t, "הנד", r.Reporter)
	assert.Equal(t, "ןופצ", r.Direction)
	assert.Equal(t, "cba", r.Car)
	// date and time keep their order
	assert.Equal(t, "10.6.2024", r.Date)
	assert.Equal(t, "14:23:05", r.Time)
}

const chatFixture = `[10.6.2024, 14:23:05] Dana: דיווח: North red sedan plate 123
[10.6.2024, 9:05:00] Omer: דיווח: South blue truck
garbage line that matches nothing
[11.6.2024, 8:00:00] Dana: דיווח: East white van
`

func TestParse_ResolverCorrection(t *testing.T) {
	calls := 0
	resolver := ResolverFunc(func(line string) (string, bool) {
		calls++
		assert.Equal(t, "garbage line that matches nothing", line)
		return "[10.6.2024, 10:00:00] Noa: דיווח: West gray hatchback", true
	})
	p := New(Options{}, resolver, nil)

	reports, err := p.Parse(strings.NewReader(chatFixture))
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "resolver consulted once per bad line")
	require.Len(t, reports, 4)
	assert.Equal(t, "Noa", reports[2].Reporter)
}

func TestParse_ResolverSkip(t *testing.T) {
	p := New(Options{}, AutoSkip{}, nil)

	reports, err := p.Parse(strings.NewReader(chatFixture))
	require.NoError(t, err)
	assert.Len(t, reports, 3, "bad line dropped, pipeline continues")
}

func TestParse_CorrectionStillBad(t *testing.T) {
	resolver := ResolverFunc(func(string) (string, bool) {
		return "still not a report line", true
	})
	p := New(Options{}, resolver, nil)

	reports, err := p.Parse(strings.NewReader(chatFixture))
	require.NoError(t, err)
	assert.Len(t, reports, 3, "no second correction attempt")
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	calls := 0
	resolver := ResolverFunc(func(string) (string, bool) {
		calls++
		return "", false
	})
	p := New(Options{}, resolver, nil)

	reports, err := p.Parse(strings.NewReader("\n\n[10.6.2024, 8:00:00] Dana: דיווח: North jeep\n\n"))
	require.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Zero(t, calls, "blank lines never reach the resolver")
}

func TestParseFile(t *testing.T) {
	t.Run("reads fixture", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chat.txt")
		require.NoError(t, os.WriteFile(path, []byte(chatFixture), 0o644))

		p := New(Options{}, AutoSkip{}, nil)
		reports, err := p.ParseFile(path)
		require.NoError(t, err)
		assert.Len(t, reports, 3)
	})

	t.Run("missing file is fatal", func(t *testing.T) {
		p := New(Options{}, AutoSkip{}, nil)
		_, err := p.ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})
}

func TestFilterDate(t *testing.T) {
	reports := []Report{
		{Date: "10.6.2024", Time: "14:23:05", Reporter: "Dana", Direction: "North", Car: "red sedan"},
		{Date: "11.6.2024", Time: "8:00:00", Reporter: "Dana", Direction: "East", Car: "white van"},
		{Date: "10.6.2024", Time: "9:05:00", Reporter: "Omer", Direction: "South", Car: "blue truck"},
	}

	got := FilterDate(reports, "10.6.2024")
	require.Len(t, got, 2)
	assert.Equal(t, "red sedan", got[0].Car)
	assert.Equal(t, "blue truck", got[1].Car)

	t.Run("exact match only", func(t *testing.T) {
		assert.Empty(t, FilterDate(reports, "10.06.2024"))
	})
}
