package domain

// IDGenerator produces identifiers for messages and correlation.
type IDGenerator[T any] func() T
