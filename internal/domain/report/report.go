// Package report defines the reporting capability shared by devices,
// rooms, and houses.
package report

// Reporter produces a deterministic textual snapshot of an entity and,
// recursively, everything it contains.
type Reporter interface {
	Report() string
}
