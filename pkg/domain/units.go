package domain

// Units labels the consistent unit system of an analysis. The engine never
// converts; labels only travel to reports.
type Units struct {
	Force  string `yaml:"force"`
	Length string `yaml:"length"`
	Stress string `yaml:"stress"`
}

// Stiffness returns the label of a spring rate, force per length.
func (u Units) Stiffness() string {
	return u.Force + "/" + u.Length
}

// Area returns the label of an area.
func (u Units) Area() string {
	return u.Length + "²"
}
