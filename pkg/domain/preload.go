package domain

// PreloadMode selects how a preload request is interpreted.
type PreloadMode string

const (
	// PreloadForce means Value is the preload force Fi itself.
	PreloadForce PreloadMode = "FORCE"
	// PreloadProofFraction means Value is a fraction p of the proof load.
	PreloadProofFraction PreloadMode = "PROOF_FRACTION"
)

// Preload is a preload request.
type Preload struct {
	Mode  PreloadMode `yaml:"mode"`
	Value float64     `yaml:"value"`
}

// ProofFraction builds a proof-load fraction preload request.
func ProofFraction(p float64) Preload {
	return Preload{Mode: PreloadProofFraction, Value: p}
}

// PreloadOf builds an explicit force preload request.
func PreloadOf(force float64) Preload {
	return Preload{Mode: PreloadForce, Value: force}
}
