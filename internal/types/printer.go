package types

// Inspired by Kubernetes
//
// PrintableResource is any resource that knows how to render itself both as
// a set of items (for structured output) and as a table.
type PrintableResource[T any] interface {
	GetItems() []T
	GetTable() (Table, error)
}
