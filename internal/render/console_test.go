package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roadwatch/internal/aggregate"
)

func sampleViews() ([]aggregate.Row, *aggregate.Summary) {
	rows := []aggregate.Row{
		{Time: "10:00:00", Reporter: "Noa", Direction: "West", Car: "gray jeep"},
		{Time: "9:05:00", Reporter: "Dana", Direction: "North", Car: "red sedan"},
	}
	sum := aggregate.NewSummary()
	sum.Add("gray jeep", aggregate.Entry{Time: "10:00:00", Reporter: "Noa", Direction: "West"})
	sum.Add("red sedan", aggregate.Entry{Time: "9:05:00", Reporter: "Dana", Direction: "North"})
	return rows, sum
}

func TestConsole(t *testing.T) {
	rows, sum := sampleViews()

	var b strings.Builder
	Console(&b, "10.6.2024", rows, sum, Options{})
	out := b.String()

	assert.Contains(t, out, "=== Chronological Table (10.6.2024) ===")
	assert.Contains(t, out, "=== Car Summary Table ===")

	// rows keep the given order and stay pipe-delimited
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 4)
	assert.Contains(t, lines[1], "10:00:00")
	assert.Contains(t, lines[1], "gray jeep")
	assert.Contains(t, lines[2], "9:05:00")
	assert.Equal(t, 3, strings.Count(lines[1], "|"))

	assert.Contains(t, out, "gray jeep:")
	assert.Contains(t, out, "  - 9:05:00 | Dana | North")

	t.Run("no ansi without color", func(t *testing.T) {
		assert.NotContains(t, out, "\033[")
	})
}

func TestConsole_Color(t *testing.T) {
	rows, sum := sampleViews()

	var b strings.Builder
	Console(&b, "10.6.2024", rows, sum, Options{Color: true})
	assert.Contains(t, b.String(), colorHead)
	assert.Contains(t, b.String(), colorReset)
}

func TestConsole_VisualTransform(t *testing.T) {
	rows := []aggregate.Row{
		{Time: "9:05:00", Reporter: "דנה", Direction: "צפון", Car: "red sedan"},
	}
	sum := aggregate.NewSummary()
	sum.Add("red sedan", aggregate.Entry{Time: "9:05:00", Reporter: "דנה", Direction: "צפון"})

	var b strings.Builder
	Console(&b, "10.6.2024", rows, sum, Options{Visual: true})
	out := b.String()

	assert.Contains(t, out, "הנד", "reporter shown in visual order")
	assert.Contains(t, out, "ןופצ")
	assert.NotContains(t, strings.Split(out, "\n")[1], "דנה")

	// stored values stay in logical order
	assert.Equal(t, "דנה", rows[0].Reporter)
	assert.Equal(t, "צפון", sum.Entries("red sedan")[0].Direction)
}
