package parse

// Report is one car-sighting observation extracted from a chat line.
// All five fields are non-empty when the line matched the pattern.
type Report struct {
	Date      string // "D.M.YYYY"
	Time      string // "H:M:S", or "H:M" when ShortTime is set
	Reporter  string
	Direction string
	Car       string
}
