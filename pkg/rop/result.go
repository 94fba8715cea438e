package rop

import "fmt"

// Result is the outcome of an operation that returns a payload of type T on
// success or an error of type E on failure. Exactly one of the two is held.
//
// Result is a value: copies share nothing but the payload or error they
// wrap, so it may be handed between goroutines freely.
type Result[T, E any] struct {
	data   T
	err    E
	failed bool
}

func Success[T, E any](data T) Result[T, E] {
	return Result[T, E]{
		data: data,
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:    err,
		failed: true,
	}
}

// FromPair adapts the usual (value, error) return of a Go function.
func FromPair[T any](data T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](data)
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

func (r Result[T, E]) Tag() Tag {
	return tagOf(r.failed)
}

// Data returns the payload. It panics with an *InvalidStateError when r is
// a failure; use TryGetData when the branch is not known.
func (r Result[T, E]) Data() T {
	if r.failed {
		panic(invalidState("Result.Data", r.failed))
	}
	return r.data
}

// Err returns the error. It panics with an *InvalidStateError when r is a
// success.
func (r Result[T, E]) Err() E {
	if !r.failed {
		panic(invalidState("Result.Err", r.failed))
	}
	return r.err
}

func (r Result[T, E]) TryGetData() (T, bool) {
	if r.failed {
		var zero T
		return zero, false
	}
	return r.data, true
}

func (r Result[T, E]) TryGetError() (E, bool) {
	if r.failed {
		return r.err, true
	}
	var zero E
	return zero, false
}

func (r Result[T, E]) DataOr(def T) T {
	if r.failed {
		return def
	}
	return r.data
}

func (r Result[T, E]) ErrOr(def E) E {
	if r.failed {
		return r.err
	}
	return def
}

func (r Result[T, E]) OnSuccess(action func(data T)) Result[T, E] {
	if !r.failed {
		action(r.data)
	}
	return r
}

func (r Result[T, E]) OnFailure(action func(err E)) Result[T, E] {
	if r.failed {
		action(r.err)
	}
	return r
}

// Narrow drops the payload of a success and keeps the error of a failure.
func (r Result[T, E]) Narrow() Status[E] {
	if r.failed {
		return Fail(r.err)
	}
	return Ok[E]()
}

func (r Result[T, E]) String() string {
	if r.failed {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.data)
}
