package domain

// Query asks for data without changing state.
type Query[T any] interface {
	QueryName() string
	Payload() T
}
