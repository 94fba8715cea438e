package solo

import (
	"github.com/ib-77/outcome/pkg/rop"
)

// On runs exactly one of the handlers and returns its value.
func On[T, E, R any](input rop.Result[T, E],
	onSuccess func(data T) R,
	onFailure func(err E) R) R {

	if data, ok := input.TryGetData(); ok {
		return onSuccess(data)
	}
	err, _ := input.TryGetError()
	return onFailure(err)
}

// MapBoth moves a Result to new payload and error types. The chosen
// handler's Result is returned as is; the other handler is never called.
func MapBoth[T, E, T2, E2 any](input rop.Result[T, E],
	onSuccess func(data T) rop.Result[T2, E2],
	onFailure func(err E) rop.Result[T2, E2]) rop.Result[T2, E2] {

	return On(input, onSuccess, onFailure)
}

// MapSuccess chains a payload step. A failure is forwarded with its error
// untouched and onSuccess is not called.
func MapSuccess[T, E, T2 any](input rop.Result[T, E],
	onSuccess func(data T) rop.Result[T2, E]) rop.Result[T2, E] {

	return MapBoth(input, onSuccess, rop.Failure[T2, E])
}

// MapFailure chains an error step. A success is forwarded with its payload
// untouched and onFailure is not called.
func MapFailure[T, E, E2 any](input rop.Result[T, E],
	onFailure func(err E) rop.Result[T, E2]) rop.Result[T, E2] {

	return MapBoth(input, rop.Success[T, E2], onFailure)
}

// Select transforms the payload with a plain function.
func Select[T, E, T2 any](input rop.Result[T, E],
	onSuccess func(data T) T2) rop.Result[T2, E] {

	return MapSuccess(input, func(data T) rop.Result[T2, E] {
		return rop.Success[T2, E](onSuccess(data))
	})
}

// Translate transforms the error with a plain function, typically to move
// it into the error vocabulary of the calling layer.
func Translate[T, E, E2 any](input rop.Result[T, E],
	onFailure func(err E) E2) rop.Result[T, E2] {

	return MapFailure(input, func(err E) rop.Result[T, E2] {
		return rop.Failure[T](onFailure(err))
	})
}

// Try calls an ordinary Go function and captures its (value, error) pair.
func Try[T any](execute func() (T, error)) rop.Result[T, error] {
	data, err := execute()
	return rop.FromPair(data, err)
}

// Check keeps a success only if check reports no error for its payload.
func Check[T, E any](input rop.Result[T, E],
	check func(data T) (err E, failed bool)) rop.Result[T, E] {

	return MapSuccess(input, func(data T) rop.Result[T, E] {
		if err, failed := check(data); failed {
			return rop.Failure[T](err)
		}
		return input
	})
}

// FirstFailure returns the first failing outcome's error as a Status, or a
// success when none failed. Later outcomes are not inspected once one fails.
func FirstFailure[E any](outcomes ...rop.Failable[E]) rop.Status[E] {
	for _, o := range outcomes {
		if err, failed := o.TryGetError(); failed {
			return rop.Fail(err)
		}
	}
	return rop.Ok[E]()
}
