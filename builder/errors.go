// File: errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is; implementations attach context via %w.
package builder

import "errors"

// ErrEmptyMemberName indicates a record referenced an empty member name.
// Classification: malformed input detected during graph construction.
// Usage: if errors.Is(err, ErrEmptyMemberName) { /* reject the record set */ }.
var ErrEmptyMemberName = errors.New("builder: empty member name")
