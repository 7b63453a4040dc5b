// Package service defines the interfaces the core expects from external
// infrastructure collaborators.
package service

import "context"

// Document is one full snapshot of a per-store owner document. Top-level keys
// are slice names; values are dynamically typed per slice.
type Document map[string]any

// Unsubscribe stops snapshot delivery for one subscription. Calling it more
// than once is safe.
type Unsubscribe func()

// DocumentChannel provides subscribe-for-changes reads and partial-field
// merge writes against a single remote document keyed by an opaque owner id.
type DocumentChannel interface {
	// Subscribe delivers the full current document soon after the call and
	// again on every subsequent remote change, in server commit order, until
	// the returned Unsubscribe is invoked. A nil Document means the document
	// does not exist. Failures are delivered to onError, after which no
	// further snapshots follow; there is no automatic retry.
	Subscribe(ctx context.Context, ownerID string, onSnapshot func(Document), onError func(error)) (Unsubscribe, error)

	// MergeWrite shallow-merges the given top-level fields into the remote
	// document. It does not read-modify-write atomically: callers must supply
	// fully-resolved slice values, not diffs.
	MergeWrite(ctx context.Context, ownerID string, fields map[string]any) error

	// Create writes a complete new document for the owner. Used once, at
	// store provisioning time.
	Create(ctx context.Context, ownerID string, fields map[string]any) error

	// Get performs a one-shot read of the document. A nil Document means the
	// document does not exist.
	Get(ctx context.Context, ownerID string) (Document, error)
}
