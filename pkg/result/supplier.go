package result

// CheckedSupplier produces a T or fails with a non-nil error.
type CheckedSupplier[T any] func() (T, error)
