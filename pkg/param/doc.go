// Package param provides typed, named values with explicit validation checks
// for request parameters.
//
// A checked value holds a parameter name, an optional typed value and a
// failure counter. Callers invoke boolean checks on it directly; each failed
// check increments the counter exactly once and then synchronously notifies
// the failure callbacks, in order. Passing checks have no side effects.
//
// # Value types
//
//   - Param[T]      – presence, equality and membership for any type
//   - Comparable[T] – adds greater/less-than and between checks
//   - Number[T]     – adds sign checks relative to a zero reference
//   - Text          – adds length, emptiness, regexp, substring, case-folded
//     membership and format checks
//   - Time          – Comparable over time.Time with instant equality
//
// # Callbacks
//
// Every check has three call shapes:
//
//	age.IsBetween(18, 120, true)                 // default callbacks from WithCallbacks
//	age.Using(onAge).IsBetween(18, 120, true)    // exactly one explicit callback
//	age.Using(a, b).IsBetween(18, 120, true)     // explicit ordered list
//
// Using returns a view sharing the name, value and counter; it never changes
// the defaults. Using() with no arguments counts the failure without notifying
// anyone.
//
// Callbacks receive a Failure carrying the check kind, the checked value, an
// English message and the check arguments keyed for translation. Collect adds
// failures to an Errors slice; Counter aggregates them across a whole form.
//
// # Absent values
//
// Presence checks accept absent values. Every other check panics with a
// *NilValueError when the value is absent: it is a programming error, not a
// validation failure, and it does not touch the counter. Guard with
// IsPresent, or defer Recover at a boundary to turn the panic into an error.
//
// Checked values are scoped to one validation pass and are not safe for
// concurrent use.
package param
