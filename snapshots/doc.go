// Package snapshots builds the output-time schedules handed to the
// evolution code: the scale factors a = 1/(1+z) at which snapshots are
// written.
//
// Two ready-made schedules cover the library's simulation flavors:
// LymanAlphaSchedule walks from z = 4.2 down toward a configurable end
// redshift in steps of 0.2, and NCDMSchedule is the fixed high-redshift
// list used for non-cold dark matter runs. FromRedshifts converts any
// caller-supplied strictly decreasing redshift sequence.
//
// All functions are pure and safe for concurrent use.
package snapshots
