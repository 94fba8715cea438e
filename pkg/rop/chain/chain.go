package chain

import (
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](result rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) Chain[T, E] {
	return Start(rop.Success[T, E](value))
}

// Result returns the underlying rop.Result
func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then chains a step that returns a rop.Result of the same types
func (c Chain[T, E]) Then(onSuccess func(data T) rop.Result[T, E]) Chain[T, E] {
	return Start(solo.MapSuccess(c.result, onSuccess))
}

// Map chains a pure transformation of the payload
func (c Chain[T, E]) Map(onSuccess func(data T) T) Chain[T, E] {
	return Start(solo.Select(c.result, onSuccess))
}

// Recover gives a failure a chance to turn back into a success
func (c Chain[T, E]) Recover(onFailure func(err E) rop.Result[T, E]) Chain[T, E] {
	return Start(solo.MapFailure(c.result, onFailure))
}

// Ensure performs side effects without changing the result; nil callbacks
// are skipped
func (c Chain[T, E]) Ensure(onSuccess func(data T), onFailure func(err E)) Chain[T, E] {
	if onSuccess != nil {
		c.result.OnSuccess(onSuccess)
	}
	if onFailure != nil {
		c.result.OnFailure(onFailure)
	}
	return c
}

// To moves the chain to a new payload type
func To[T, U, E any](c Chain[T, E], onSuccess func(data T) rop.Result[U, E]) Chain[U, E] {
	return Start(solo.MapSuccess(c.result, onSuccess))
}

// Select moves the chain to a new payload type with a pure transformation
func Select[T, U, E any](c Chain[T, E], onSuccess func(data T) U) Chain[U, E] {
	return Start(solo.Select(c.result, onSuccess))
}

// Finally collapses the chain into a final value using solo.On
func Finally[T, E, R any](c Chain[T, E], onSuccess func(data T) R, onFailure func(err E) R) R {
	return solo.On(c.result, onSuccess, onFailure)
}
