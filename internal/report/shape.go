package report

import (
	"fmt"

	"patrolscribe/constants"
	"patrolscribe/internal/common"
)

// Shape pairs a report kind with the narrative policy its extraction
// requests must carry.
type Shape struct {
	Kind               constants.ReportKind
	NarrativeGuideline string
}

// ShapeFor resolves a caller-supplied report type to its record shape.
// Unknown kinds fail with a configuration error on every code path;
// there is no generic fallback shape.
func ShapeFor(reportType string) (Shape, error) {
	kind, ok := constants.ParseReportKind(reportType)
	if !ok {
		return Shape{}, common.ConfigurationError(fmt.Sprintf("unknown report type %q", reportType), nil)
	}
	switch kind {
	case constants.CrownBrief:
		return Shape{Kind: kind, NarrativeGuideline: CrownBriefGuideline}, nil
	case constants.GeneralOccurrence:
		return Shape{Kind: kind, NarrativeGuideline: GeneralOccurrenceGuideline}, nil
	}
	return Shape{}, common.ConfigurationError(fmt.Sprintf("no shape registered for report kind %q", kind), nil)
}
