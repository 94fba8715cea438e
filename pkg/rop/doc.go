// Package rop defines the two outcome values used across the module.
//
// Status[E] holds nothing on success and an error of type E on failure.
// Result[T, E] holds a payload of type T on success or an error of type E on
// failure. Both are tagged values: the branch is fixed at construction and
// never changes, and every combinator returns a new value.
//
// Highlights:
// - Ok/Fail: construct Status[E]
// - Success/Failure: construct Result[T, E]
// - AsSuccess/AsFailure + FromSuccess/FromFailure: tagged construction, safe
//   when T and E are the same type
// - Of: classify a bare value by its dynamic type, refusing ambiguous ones
// - FromPair/FromErr: adapt (value, error) returns
// - TryGetData/TryGetError: panic-free accessors
// - Data/Err: unchecked accessors that panic with ErrInvalidState on the
//   wrong branch
// - Narrow: Result[T, E] to Status[E]
//
// Combinators that change a type parameter live in package solo.
package rop
