// Package meshparam declares the tunable parameters of the advancing-front
// loop (the original GG_PARAM) and the selection-strategy switches (the
// original GG_ARG), as a functional-options configuration following the
// teacher's matrix/builder option packages: documented defaults, WithX
// constructors that validate and panic on nonsensical input (programmer
// error, not a runtime condition), and a gatherOptions-style constructor
// that enforces invariants once at construction time (§4.6).
package meshparam
