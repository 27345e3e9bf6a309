package constants

import "strings"

// ReportKind selects one of the two supported structured record shapes.
type ReportKind string

const (
	CrownBrief        ReportKind = "Crown Brief"
	GeneralOccurrence ReportKind = "General Occurrence"
)

var allReportKinds = []ReportKind{CrownBrief, GeneralOccurrence}

// AllReportKinds returns the supported kinds in declaration order.
func AllReportKinds() []string {
	out := make([]string, 0, len(allReportKinds))
	for _, k := range allReportKinds {
		out = append(out, string(k))
	}
	return out
}

// ParseReportKind matches case-insensitively. Anything outside the two
// known kinds is rejected; there is no generic fallback kind.
func ParseReportKind(s string) (ReportKind, bool) {
	needle := strings.TrimSpace(s)
	for _, k := range allReportKinds {
		if strings.EqualFold(needle, string(k)) {
			return k, true
		}
	}
	return "", false
}
