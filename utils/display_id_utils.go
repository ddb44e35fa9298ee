package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Display-ID prefix letters per entity type
const (
	TicketIDLetter        = "T"
	VulnerabilityIDLetter = "V"
)

// clientCodePattern matches valid client short codes: 3-4 uppercase letters
var clientCodePattern = regexp.MustCompile(`^[A-Z]{3,4}$`)

// IsValidClientCode reports whether a client short name can be used as
// a display-ID namespace
func IsValidClientCode(shortName string) bool {
	return clientCodePattern.MatchString(shortName)
}

// DisplayIDPrefix builds the display-ID prefix for an entity letter and
// client short code, including the trailing separator.
// Example: DisplayIDPrefix("T", "TSV") -> "T-TSV-"
func DisplayIDPrefix(letter, shortName string) string {
	return fmt.Sprintf("%s-%s-", letter, shortName)
}

// FormatDisplayID renders a display ID with the numeric suffix
// zero-padded to at least 3 digits, growing as needed.
// Examples: T-TSV-001, V-FNH-042, T-KZL-1000
func FormatDisplayID(letter, shortName string, n int64) string {
	return fmt.Sprintf("%s-%s-%03d", letter, shortName, n)
}

// ParseDisplayIDNumber extracts the numeric suffix of a display ID.
// Returns an error if the ID has no parseable trailing number.
func ParseDisplayIDNumber(displayID string) (int64, error) {
	idx := strings.LastIndex(displayID, "-")
	if idx < 0 || idx == len(displayID)-1 {
		return 0, fmt.Errorf("display ID %q has no numeric suffix", displayID)
	}
	n, err := strconv.ParseInt(displayID[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("display ID %q has no numeric suffix", displayID)
	}
	return n, nil
}
