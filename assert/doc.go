// Package assert evaluates runtime invariants and logs violations.
//
// Unlike test assertions, a failed Asserter check returns an error the caller
// can propagate; it never panics.
package assert
