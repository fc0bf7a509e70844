package response

import (
	"errors"

	"datachat/charts"
)

// Envelope kinds. Every envelope is exactly one of these.
const (
	KindStatistics    = "statistics"
	KindVisualization = "visualization"
	KindCombined      = "combined"
)

// Default descriptions filled in when the upstream plan left the
// description empty.
const (
	DefaultCombinedDescription      = "Analysis results"
	DefaultVisualizationDescription = "Visualization results"
	DefaultStatisticsDescription    = "Statistical analysis results"
)

// ErrInvalidShape rejects candidates carrying neither a chart spec nor
// a computed output.
var ErrInvalidShape = errors.New("response carries neither a chart spec nor a computed output")

// Envelope is the canonical response shape handed to the client. Kind
// discriminates the three legal variants; consumers switch on it
// instead of probing which keys happen to exist.
type Envelope struct {
	Kind        string      `json:"kind"`
	Chart       charts.Spec `json:"chart_spec,omitempty"`
	Output      interface{} `json:"output,omitempty"`
	Description string      `json:"description"`
}

// Normalize merges a possibly absent chart spec and a possibly absent
// output into one envelope, filling a default description when none
// was given. An output of 0 is a real output; only a nil interface
// counts as absent. Candidates with neither part fail with
// ErrInvalidShape.
func Normalize(chart charts.Spec, output interface{}, description string) (*Envelope, error) {
	hasChart := len(chart) > 0
	hasOutput := output != nil

	var kind, fallback string
	switch {
	case hasChart && hasOutput:
		kind, fallback = KindCombined, DefaultCombinedDescription
	case hasChart:
		kind, fallback = KindVisualization, DefaultVisualizationDescription
	case hasOutput:
		kind, fallback = KindStatistics, DefaultStatisticsDescription
	default:
		return nil, ErrInvalidShape
	}

	if description == "" {
		description = fallback
	}
	return &Envelope{
		Kind:        kind,
		Chart:       chart,
		Output:      output,
		Description: description,
	}, nil
}
