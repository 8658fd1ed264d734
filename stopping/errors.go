package stopping

import "errors"

// ErrSpaceMismatch indicates x and b passed to Initialize do not share a
// memory space.
var ErrSpaceMismatch = errors.New("stopping: x and b must share a memory space")
