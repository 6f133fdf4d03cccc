// Package domain contains the value types of a single bolted joint analysis:
// fastener and member descriptions, preload and applied load requests, and the
// derived stiffness, load response and factor-of-safety results. These types
// carry no behaviour beyond small accessors so they can be shared between the
// analysis engine, the application layer and report writers.
//
// Quantities are unit-agnostic. Callers must supply a consistent system
// (e.g. N, m, Pa or lbf, in, psi); no conversion happens anywhere in the engine.
package domain
