package scoreboard

import (
	"regexp"
	"strings"
	"time"
)

// updatedPattern captures the scoreboard's last-updated timestamp, e.g.
// "updated: Thu Sep 14 21:03:05 2023 (updated every 20 secs)".
var updatedPattern = regexp.MustCompile(`updated: (.*) \(updated`)

// updatedLayout matches the timestamp text captured by updatedPattern.
const updatedLayout = "Mon Jan 2 15:04:05 2006"

// Validate checks that the document contains the expected title marker.
// A missing marker means the URL points at the wrong page or the
// scoreboard is no longer being served, which is a different failure from
// not being able to fetch anything at all.
func Validate(html, titleMarker string) error {
	if !strings.Contains(html, titleMarker) {
		return &ValidationError{Reason: "title marker not found: wrong page or page unavailable"}
	}
	return nil
}

// UpdatedAt extracts the scoreboard's last-updated timestamp. The second
// return is false when the marker is absent or unparseable; callers treat
// that as non-fatal and substitute a placeholder in the report.
func UpdatedAt(html string) (time.Time, bool) {
	m := updatedPattern.FindStringSubmatch(html)
	if m == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(updatedLayout, strings.TrimSpace(m[1]))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
