package allocation

import "github.com/cockroachdb/errors"

var (
	ErrAlreadyAllocated = errors.New("player already allocated")
	ErrQuotaExceeded    = errors.New("allocation quota exceeded")
)
