package parse

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// DefaultMarker is the report marker the chat group actually uses.
const DefaultMarker = "דיווח"

const maxLineSize = 1024 * 1024

// Resolver supplies a corrected line for one that did not match the
// message pattern. ok=false drops the line. Each unrecognized line is
// resolved at most once; there is no retry loop.
type Resolver interface {
	Resolve(line string) (corrected string, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(line string) (string, bool)

func (f ResolverFunc) Resolve(line string) (string, bool) { return f(line) }

// AutoSkip drops every unrecognized line without asking. Use it for
// unattended runs.
type AutoSkip struct{}

func (AutoSkip) Resolve(string) (string, bool) { return "", false }

type Options struct {
	// Marker is the token between the reporter name and the direction.
	// Empty means DefaultMarker.
	Marker string
	// ShortTime truncates "H:M:S" to "H:M".
	ShortTime bool
	// LegacyReverse reverses the reporter, direction and car fields at
	// parse time, matching stores written by the old report generator
	// that baked visual RTL order into the data.
	LegacyReverse bool
}

type Parser struct {
	re       *regexp.Regexp
	opts     Options
	resolver Resolver
	log      *zap.Logger
}

func New(opts Options, resolver Resolver, log *zap.Logger) *Parser {
	if opts.Marker == "" {
		opts.Marker = DefaultMarker
	}
	if resolver == nil {
		resolver = AutoSkip{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	pattern := `^\[(\d+\.\d+\.\d+), (\d+:\d+:\d+)\] (.+?): ` +
		regexp.QuoteMeta(opts.Marker) + `: (\S+) (.+)$`
	return &Parser{
		re:       regexp.MustCompile(pattern),
		opts:     opts,
		resolver: resolver,
		log:      log,
	}
}

// ParseLine matches a single raw line against the message pattern.
// It is pure: the same line always yields the same Report.
func (p *Parser) ParseLine(line string) (Report, bool) {
	m := p.re.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Report{}, false
	}
	r := Report{Date: m[1], Time: m[2], Reporter: m[3], Direction: m[4], Car: m[5]}
	if p.opts.ShortTime {
		if parts := strings.Split(r.Time, ":"); len(parts) == 3 {
			r.Time = parts[0] + ":" + parts[1]
		}
	}
	if p.opts.LegacyReverse {
		r.Reporter = reverseRunes(r.Reporter)
		r.Direction = reverseRunes(r.Direction)
		r.Car = reverseRunes(r.Car)
	}
	return r, true
}

// Parse reads one message per line from r. Blank lines are skipped.
// An unrecognized line is offered to the resolver exactly once; if the
// correction still does not match, the line is dropped and parsing
// continues.
func (p *Parser) Parse(r io.Reader) ([]Report, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var reports []Report
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rep, ok := p.ParseLine(line)
		if !ok {
			corrected, resolved := p.resolver.Resolve(line)
			if !resolved || strings.TrimSpace(corrected) == "" {
				p.log.Warn("dropping unrecognized line", zap.String("line", line))
				continue
			}
			rep, ok = p.ParseLine(corrected)
			if !ok {
				p.log.Warn("correction still does not match, dropping",
					zap.String("line", corrected))
				continue
			}
		}
		reports = append(reports, rep)
	}
	return reports, scanner.Err()
}

// ParseFile parses a whole chat export. A missing file is an error.
func (p *Parser) ParseFile(path string) ([]Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(f)
}

// FilterDate keeps only reports whose date equals target exactly. No
// normalization, no alternate formats.
func FilterDate(reports []Report, date string) []Report {
	var out []Report
	for _, r := range reports {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
