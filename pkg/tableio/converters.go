// Package tableio provides typed parsers for field values.
package tableio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shapestone/shape-table/pkg/table"
)

// TimeLayouts are tried in order by ParseTime.
var TimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// ParseInt parses a base-10 64-bit integer, ignoring surrounding whitespace.
func ParseInt(s string) (any, error) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %q to int: %w", s, err)
	}
	return i, nil
}

// ParseTime parses a timestamp using the first matching entry of TimeLayouts.
// Values without a zone are read as UTC.
func ParseTime(s string) (any, error) {
	v := strings.TrimSpace(s)
	for _, layout := range TimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("cannot convert %q to time", s)
}

// ParserFor returns the parser producing values of the given kind. Apart from
// KindString and KindAny, the returned parser reads an empty field as an
// absent cell.
func ParserFor(kind table.Kind) Parser {
	switch kind {
	case table.KindBool:
		return emptyAsAbsent(func(s string) (any, error) { return ParseBool(strings.TrimSpace(s)) })
	case table.KindInt:
		return emptyAsAbsent(ParseInt)
	case table.KindFloat:
		return emptyAsAbsent(ParseFloat)
	case table.KindTime:
		return emptyAsAbsent(ParseTime)
	default:
		return ParseString
	}
}

func emptyAsAbsent(p Parser) Parser {
	return func(s string) (any, error) {
		if s == "" {
			return nil, nil
		}
		return p(s)
	}
}
