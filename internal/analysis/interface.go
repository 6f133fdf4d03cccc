package analysis

import (
	"context"

	"boltjoint/pkg/joint"
)

type Analyzer interface {
	// Analyze runs one joint analysis on a snapshot of in.
	Analyze(ctx context.Context, in joint.Input) (*Run, error)
}
