// Package joint implements the analysis of a single bolted joint loaded in
// axial tension, following the methodology of Norton, Machine Design (ch. 15).
//
// The chain is:
//
//	ResolveGeometry  → stress area, shank/thread segments inside the grip
//	ResolvePreload   → Fi from a force or a fraction of the proof load
//	ComputeStiffness → k_b (series springs), k_m (Cornwell fit), C
//	Joint.Response   → Fb, Fm and the separation clamp
//	Model.Evaluate   → separation, yield and fatigue factors of safety
//	Diagram, SweepPreload → numeric series for the joint diagram and
//	                        FoS-vs-preload-fraction plots
//
// Every function is pure. Invalid input fails with serrors.ErrValidation before
// any derived quantity is computed; physically impossible intermediates fail
// with serrors.ErrComputation. A factor of safety whose denominator is zero is
// reported as +Inf rather than an error.
package joint
