// Package tableio provides dialect detection for delimited text.
package tableio

import (
	"regexp"
	"strings"
)

// candidateDelimiters are scored in this order; earlier entries win ties.
var candidateDelimiters = []rune{',', '\t', ';', '|'}

var (
	headerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),      // snake_case or identifier
		regexp.MustCompile(`^[a-zA-Z]+[A-Z][a-zA-Z]*$`),     // camelCase
		regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
	}
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
	}
)

// Sniffer guesses the dialect of a sample of delimited text.
type Sniffer struct {
	lines     []string
	delimiter rune
	quote     rune
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a Sniffer over a sample. Two or three lines are usually enough.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{lines: splitLines(sample)}
}

func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.quote = s.detectQuote()
	s.delimiter = s.detectDelimiter()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// DetectDelimiter returns the most likely field separator among comma, tab,
// semicolon and pipe. An empty sample yields a comma.
func (s *Sniffer) DetectDelimiter() rune {
	s.analyze()
	return s.delimiter
}

// DetectQuote returns the most likely quote character, double or single quote.
func (s *Sniffer) DetectQuote() rune {
	s.analyze()
	return s.quote
}

// HasHeader reports whether the first line looks like column headers.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// Options returns base with the detected delimiter, quote and column-header setting.
func (s *Sniffer) Options(base Options) Options {
	s.analyze()
	return base.
		WithColumnDelimiter(s.delimiter).
		WithQuote(s.quote).
		WithReadColumnHeaders(s.hasHeader)
}

// detectQuote counts fields that open with each quote character.
func (s *Sniffer) detectQuote() rune {
	double, single := 0, 0
	for _, line := range s.lines {
		atStart := true
		for _, ch := range line {
			if atStart {
				switch ch {
				case '"':
					double++
				case '\'':
					single++
				}
			}
			atStart = isCandidateDelimiter(ch)
		}
	}
	if single > double {
		return '\''
	}
	return '"'
}

func isCandidateDelimiter(ch rune) bool {
	for _, d := range candidateDelimiters {
		if ch == d {
			return true
		}
	}
	return false
}

// detectDelimiter favors a delimiter that occurs the same number of times on
// every line.
func (s *Sniffer) detectDelimiter() rune {
	best := ','
	bestScore := 0
	for _, delim := range candidateDelimiters {
		counts := make([]int, 0, len(s.lines))
		for _, line := range s.lines {
			if line == "" {
				continue
			}
			counts = append(counts, countDelimiter(line, delim, s.quote))
		}
		if len(counts) == 0 || counts[0] == 0 {
			continue
		}
		score := counts[0]
		consistent := true
		for _, c := range counts[1:] {
			if c != counts[0] {
				consistent = false
				break
			}
		}
		if consistent {
			score *= 10
		}
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}
	return best
}

// countDelimiter counts occurrences of delim outside quoted runs.
func countDelimiter(line string, delim, quote rune) int {
	count := 0
	inQuotes := false
	for _, ch := range line {
		if ch == quote {
			inQuotes = !inQuotes
		} else if ch == delim && !inQuotes {
			count++
		}
	}
	return count
}

// detectHeader compares how header-like and data-like the first line's fields are.
func (s *Sniffer) detectHeader() bool {
	if len(s.lines) < 2 {
		return false
	}
	hasData := false
	for _, line := range s.lines[1:] {
		if line != "" {
			hasData = true
			break
		}
	}
	if !hasData {
		return false
	}

	fields, err := Tokenize(s.lines[0], s.delimiter, s.quote)
	if err != nil {
		return false
	}
	headerScore, dataScore := 0, 0
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if isLikelyHeader(field) {
			headerScore++
		}
		if isLikelyData(field) {
			dataScore++
		}
	}
	return headerScore > dataScore
}

func isLikelyHeader(s string) bool {
	if s == "" || isNumber(s) || isBool(s) {
		return false
	}
	for _, pattern := range headerPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

func isLikelyData(s string) bool {
	if s == "" {
		return false
	}
	if isNumber(s) || isBool(s) || strings.Contains(s, "@") {
		return true
	}
	for _, pattern := range datePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}
