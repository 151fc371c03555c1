package model

// Searchable is implemented by models that advertise which of their
// columns autocomplete endpoints may match against.
type Searchable interface {
	SearchFields() []string
}
