package repository

import (
	"errors"

	"paradasia/shared/constant"

	"github.com/lib/pq"
)

// IsUniqueViolation reports whether err came from a violated unique
// constraint, which is how duplicate natural keys surface on insert.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}
