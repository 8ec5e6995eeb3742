package tableio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Parser turns a field's text into a cell value.
type Parser func(string) (any, error)

// Formatter turns a cell value into a field's text.
type Formatter func(any) string

// ParseString is the identity parser.
func ParseString(s string) (any, error) {
	return s, nil
}

// ParseFloat parses a 64-bit float. Surrounding whitespace is ignored and the
// spellings Infinity and NaN are accepted in any letter case, optionally signed.
// Out-of-range magnitudes saturate to ±Inf or zero.
func ParseFloat(s string) (any, error) {
	f, ok := parseNumber(s)
	if !ok {
		return nil, fmt.Errorf("cannot convert %q to float", s)
	}
	return f, nil
}

// ParseBool parses "true" or "false" in any letter case.
func ParseBool(s string) (any, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return nil, fmt.Errorf("cannot convert %q to bool", s)
}

// guessRule pairs a predicate on a sample token with the parser chosen when it holds.
type guessRule struct {
	match  func(string) bool
	parser Parser
}

// guessRules are tried in order; the first match wins.
var guessRules = []guessRule{
	{match: isNumber, parser: ParseFloat},
	{match: isBool, parser: ParseBool},
}

// GuessParser selects a parser from a sample token: float when the token is
// numeric, bool when it reads true or false, otherwise the identity parser.
func GuessParser(token string) Parser {
	for _, rule := range guessRules {
		if rule.match(token) {
			return rule.parser
		}
	}
	return ParseString
}

// Guess parses a token with the parser GuessParser selects for it.
func Guess(token string) any {
	v, err := GuessParser(token)(token)
	if err != nil {
		return token
	}
	return v
}

func isNumber(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

func isBool(s string) bool {
	_, err := ParseBool(s)
	return err == nil
}

// parseNumber accepts optionally signed decimal literals with an optional
// exponent, plus the words Infinity and NaN. Hex literals, underscores and
// the short spelling inf are rejected even though strconv accepts them.
func parseNumber(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	body := t
	neg := false
	switch body[0] {
	case '+':
		body = body[1:]
	case '-':
		neg = true
		body = body[1:]
	}
	switch strings.ToLower(body) {
	case "infinity":
		if neg {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	case "nan":
		return math.NaN(), true
	}
	if !isDecimalLiteral(body) {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// isDecimalLiteral reports whether s is digits with an optional fraction and
// an optional exponent, with at least one mantissa digit.
func isDecimalLiteral(s string) bool {
	digits := 0
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exp := 0
		for i < len(s) && isDigit(s[i]) {
			i++
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// FormatValue is the default formatter. Floats use the shortest digits that
// round-trip, always with a fraction digit, and scientific notation outside
// [1e-3, 1e7): "123.0", "0.001", "1.2345678900987654E9", "NaN", "-Infinity".
// Times use RFC 3339 and nil is empty.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatFloat(x, 64)
	case float32:
		return formatFloat(float64(x), 32)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	if abs := math.Abs(f); abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.ContainsRune(mantissa, '.') {
		mantissa += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(e)
}
