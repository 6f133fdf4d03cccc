package domain

// Fastener describes the bolt geometry and material.
type Fastener struct {
	// NominalDiameter is the major (nominal) thread diameter.
	NominalDiameter float64 `yaml:"nominalDiameter"`
	// Pitch is the axial thread pitch. Exactly one of Pitch and
	// ThreadsPerLength must be set unless StressArea is supplied.
	Pitch float64 `yaml:"pitch"`
	// ThreadsPerLength is the thread count per unit length (e.g. TPI).
	ThreadsPerLength float64 `yaml:"threadsPerLength"`
	// MinorDiameter is the thread root diameter. Zero derives it from the
	// basic thread profile.
	MinorDiameter float64 `yaml:"minorDiameter"`

	// TotalLength is the length of the fastener under the head.
	TotalLength float64 `yaml:"totalLength"`
	// ThreadedLength is the threaded portion of TotalLength.
	ThreadedLength float64 `yaml:"threadedLength"`
	// GripLength is the clamped length of the joint.
	GripLength float64 `yaml:"gripLength"`

	// Modulus is the Young's modulus of the bolt material.
	Modulus float64 `yaml:"modulus"`
	// ProofStrength is the minimum proof strength S_p.
	ProofStrength float64 `yaml:"proofStrength"`
	// YieldStrength is the minimum yield strength S_y.
	YieldStrength float64 `yaml:"yieldStrength"`
	// UltimateStrength is the minimum tensile strength S_ut.
	UltimateStrength float64 `yaml:"ultimateStrength"`
	// EnduranceLimit is the corrected fully reversed endurance limit S_e.
	EnduranceLimit float64 `yaml:"enduranceLimit"`
	// FatigueConcentration is the fatigue stress-concentration factor K_f of
	// the thread. Zero or one means none.
	FatigueConcentration float64 `yaml:"fatigueConcentration"`

	// StressArea is the tensile stress area A_t. Zero derives it from the
	// thread geometry.
	StressArea float64 `yaml:"stressArea"`
}

// ProofLoad returns S_p·A_t for the given stress area.
func (f Fastener) ProofLoad(stressArea float64) float64 {
	return f.ProofStrength * stressArea
}
