package rop

import "fmt"

// Status is the outcome of an operation that has nothing to return on
// success and an error of type E on failure.
//
// The zero Status is a success. A Status built by Fail stays a failure even
// when its error is the zero E.
type Status[E any] struct {
	err    E
	failed bool
}

func Ok[E any]() Status[E] {
	return Status[E]{}
}

func Fail[E any](err E) Status[E] {
	return Status[E]{
		err:    err,
		failed: true,
	}
}

// FromErr turns a plain Go error into a Status; nil means success.
func FromErr(err error) Status[error] {
	if err != nil {
		return Fail(err)
	}
	return Ok[error]()
}

func (s Status[E]) IsSuccess() bool {
	return !s.failed
}

func (s Status[E]) IsFailure() bool {
	return s.failed
}

func (s Status[E]) Tag() Tag {
	return tagOf(s.failed)
}

// Err returns the error of a failed Status. It panics with an
// *InvalidStateError when s is a success.
func (s Status[E]) Err() E {
	if !s.failed {
		panic(invalidState("Status.Err", s.failed))
	}
	return s.err
}

// TryGetError returns the error and true only when s is a failure.
func (s Status[E]) TryGetError() (E, bool) {
	if s.failed {
		return s.err, true
	}
	var zero E
	return zero, false
}

func (s Status[E]) ErrOr(def E) E {
	if s.failed {
		return s.err
	}
	return def
}

// OnSuccess runs action when s is a success and returns s unchanged.
func (s Status[E]) OnSuccess(action func()) Status[E] {
	if !s.failed {
		action()
	}
	return s
}

// OnFailure runs action with the error when s is a failure and returns s
// unchanged.
func (s Status[E]) OnFailure(action func(err E)) Status[E] {
	if s.failed {
		action(s.err)
	}
	return s
}

// Then continues with next on success; a failure is forwarded as is.
func (s Status[E]) Then(next func() Status[E]) Status[E] {
	if s.failed {
		return s
	}
	return next()
}

func (s Status[E]) String() string {
	if s.failed {
		return fmt.Sprintf("Failure(%v)", s.err)
	}
	return "Success()"
}
