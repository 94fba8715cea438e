package rop

// Inspector reports which branch an outcome holds.
type Inspector interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// Failable is an outcome that may carry an error of type E.
type Failable[E any] interface {
	Inspector
	// TryGetError returns the error and true only on failure
	TryGetError() (E, bool)
}

// Carrier is an outcome that carries either a payload of type T or an error
// of type E.
type Carrier[T, E any] interface {
	Failable[E]
	// TryGetData returns the payload and true only on success
	TryGetData() (T, bool)
}

var (
	_ Failable[error]     = Status[error]{}
	_ Carrier[any, error] = Result[any, error]{}
)
