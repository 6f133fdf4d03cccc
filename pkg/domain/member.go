package domain

// MemberStack names the modelling assumption used for the clamped members.
type MemberStack string

const (
	// StackEquivalent treats the whole clamped stack as one equivalent spring
	// of a single material. It is not valid when a markedly compliant layer
	// such as a gasket is present.
	StackEquivalent MemberStack = "EQUIVALENT"
)

// Member describes the clamped members of the joint.
type Member struct {
	// Modulus is the Young's modulus of the (equivalent) member material.
	Modulus float64 `yaml:"modulus"`
	// OuterDiameter is the effective joint diameter (width) around the bolt.
	OuterDiameter float64 `yaml:"outerDiameter"`
	// Thickness is the total clamped thickness. Zero inherits the fastener's
	// grip length.
	Thickness float64 `yaml:"thickness"`
	// Stack is the stiffness assumption for the members. Empty means
	// StackEquivalent.
	Stack MemberStack `yaml:"stack"`
}

// StackOrDefault returns Stack, defaulting to StackEquivalent.
func (m Member) StackOrDefault() MemberStack {
	if m.Stack == "" {
		return StackEquivalent
	}

	return m.Stack
}
