// Package report writes joint analysis results for people and downstream
// tools. Infinite factors of safety never reach a format that cannot hold them.
package report

import (
	"math"
	"strconv"

	"boltjoint/pkg/domain"
	"boltjoint/pkg/joint"
)

// Document is everything a report shows about one analysis.
type Document struct {
	Title  string
	RunID  string
	Units  domain.Units
	Input  joint.Input
	Result *joint.Result
}

// formatFloat renders v compactly; infinite factors of safety print as "inf".
func formatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', 6, 64)
}
