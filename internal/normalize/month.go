package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// monthOrdinals maps Portuguese month names and their three-letter
// abbreviations to ordinals 1..12.
var monthOrdinals = map[string]int{
	"janeiro": 1, "jan": 1,
	"fevereiro": 2, "fev": 2,
	"março": 3, "marco": 3, "mar": 3,
	"abril": 4, "abr": 4,
	"maio": 5, "mai": 5,
	"junho": 6, "jun": 6,
	"julho": 7, "jul": 7,
	"agosto": 8, "ago": 8,
	"setembro": 9, "set": 9,
	"outubro": 10, "out": 10,
	"novembro": 11, "nov": 11,
	"dezembro": 12, "dez": 12,
}

// MonthOrdinal resolves a Portuguese month name or abbreviation to its
// ordinal 1..12. Unrecognized names yield 0, which sorts before every real
// month; this is the documented silent-failure policy, not an error.
func MonthOrdinal(name string) int {
	key := strings.ToLower(strings.TrimSpace(name))
	if n, ok := monthOrdinals[key]; ok {
		return n
	}
	// Numeric cells ("1", "01") occur in some exports.
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 12 {
		return n
	}
	return 0
}

// Stringify renders a raw cell as a string without formatting decisions:
// floats that carry integer values print without a fraction, so a numeric
// year cell 2025.0 reads back as "2025".
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// ParseYear parses a year cell, falling back to the given default when the
// cell is not numeric. The dashboard historically defaulted missing years to
// 2024 rather than dropping the row.
func ParseYear(raw any, fallback int) int {
	s := strings.TrimSpace(Stringify(raw))
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}
