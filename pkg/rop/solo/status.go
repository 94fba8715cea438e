package solo

import (
	"github.com/ib-77/outcome/pkg/rop"
)

func OnStatus[E, R any](input rop.Status[E],
	onSuccess func() R,
	onFailure func(err E) R) R {

	if err, failed := input.TryGetError(); failed {
		return onFailure(err)
	}
	return onSuccess()
}

// MapStatus dispatches like OnStatus but both handlers return a Status,
// which lets the error type change between layers.
func MapStatus[E, E2 any](input rop.Status[E],
	onSuccess func() rop.Status[E2],
	onFailure func(err E) rop.Status[E2]) rop.Status[E2] {

	return OnStatus(input, onSuccess, onFailure)
}

func MapStatusFailure[E, E2 any](input rop.Status[E],
	onFailure func(err E) rop.Status[E2]) rop.Status[E2] {

	return MapStatus(input, rop.Ok[E2], onFailure)
}

func TranslateStatus[E, E2 any](input rop.Status[E],
	onFailure func(err E) E2) rop.Status[E2] {

	return MapStatusFailure(input, func(err E) rop.Status[E2] {
		return rop.Fail(onFailure(err))
	})
}

// ThenResult lifts a Status into a Result: on success the producer supplies
// the Result, on failure the error is carried over.
func ThenResult[T, E any](input rop.Status[E],
	onSuccess func() rop.Result[T, E]) rop.Result[T, E] {

	return OnStatus(input, onSuccess, rop.Failure[T, E])
}

// ThenValue is ThenResult for producers that cannot fail.
func ThenValue[T, E any](input rop.Status[E],
	onSuccess func() T) rop.Result[T, E] {

	return ThenResult(input, func() rop.Result[T, E] {
		return rop.Success[T, E](onSuccess())
	})
}
