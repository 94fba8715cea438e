// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous railway-oriented chains using solo primitives.
//
// Each step returns a new Chain; once a step fails the remaining success
// steps are skipped and the failure flows through unchanged.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: continue with a step returning a Result of the same types
// - Map: transform the successful value (T -> T)
// - Recover: replace a failure with the outcome of a handler
// - Ensure: run side effects without changing the result
// - To: switch to a new payload type (T -> U)
// - Finally: collapse the chain into a final value via handlers
package chain
