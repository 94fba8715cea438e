// Package solo contains the combinators over rop.Status and rop.Result that
// change a type parameter. Go methods cannot introduce type parameters, so
// they are free functions; combinators that keep both types are methods in
// package rop.
//
// Highlights:
// - On/OnStatus: total dispatch, exactly one handler runs
// - MapBoth/MapStatus: dispatch where both handlers return an outcome
// - MapSuccess/MapFailure: chain one branch, forward the other untouched
// - Select/Translate/TranslateStatus: plain payload or error transforms
// - ThenResult/ThenValue: lift a Status into a Result
// - Try: adapt a (value, error) function
// - Check: turn a success into a failure when a check fails
// - FirstFailure: first failing outcome of several
package solo
