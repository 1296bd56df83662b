// Package idgen mints the per-invocation correlation ID the CLI attaches to
// its verbose/log output, using google/uuid.
package idgen

import "github.com/google/uuid"

// CompileID is an opaque per-run correlation ID.
type CompileID string

// New mints a fresh random (v4) CompileID.
func New() CompileID {
	return CompileID(uuid.NewString())
}

func (id CompileID) String() string { return string(id) }
