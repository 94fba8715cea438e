package rop

import (
	"fmt"
	"reflect"
)

// Succeeded tags a value as a payload. It is the only safe way to build a
// Result from a bare value when T and E are the same type.
type Succeeded[T any] struct {
	Data T
}

// Failed tags a value as an error.
type Failed[E any] struct {
	Err E
}

func AsSuccess[T any](data T) Succeeded[T] {
	return Succeeded[T]{Data: data}
}

func AsFailure[E any](err E) Failed[E] {
	return Failed[E]{Err: err}
}

func FromSuccess[T, E any](m Succeeded[T]) Result[T, E] {
	return Success[T, E](m.Data)
}

func FromFailure[T, E any](m Failed[E]) Result[T, E] {
	return Failure[T](m.Err)
}

// Distinct reports whether T and E are different static types. Of only
// classifies bare values when they are.
func Distinct[T, E any]() bool {
	return reflect.TypeFor[T]() != reflect.TypeFor[E]()
}

// Of builds a Result from v by its dynamic type: a T becomes a success, an E
// a failure. Succeeded and Failed markers are always honoured.
//
// A bare value is refused with ErrAmbiguous when T and E are the same type
// or when v satisfies both, and with ErrUnclassified when it satisfies
// neither. The Result is meaningless when the error is not nil.
func Of[T, E any](v any) (Result[T, E], error) {
	switch m := v.(type) {
	case Succeeded[T]:
		return FromSuccess[T, E](m), nil
	case Failed[E]:
		return FromFailure[T](m), nil
	}

	if !Distinct[T, E]() {
		return Result[T, E]{}, fmt.Errorf("%w: payload and error are both %s",
			ErrAmbiguous, reflect.TypeFor[T]())
	}

	data, isData := v.(T)
	err, isErr := v.(E)

	switch {
	case isData && isErr:
		return Result[T, E]{}, fmt.Errorf("%w: %T fits %s and %s",
			ErrAmbiguous, v, reflect.TypeFor[T](), reflect.TypeFor[E]())
	case isData:
		return Success[T, E](data), nil
	case isErr:
		return Failure[T](err), nil
	default:
		return Result[T, E]{}, fmt.Errorf("%w: %T", ErrUnclassified, v)
	}
}

// MustOf is Of for values whose classification is a programming
// invariant; it panics on ErrAmbiguous or ErrUnclassified.
func MustOf[T, E any](v any) Result[T, E] {
	r, err := Of[T, E](v)
	if err != nil {
		panic(err)
	}
	return r
}
