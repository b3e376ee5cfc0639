package validators

import (
	"errors"

	"github.com/Egor213/LogiGraph/internal/repo/repotypes"
)

var (
	ErrNegativeFirst  = errors.New("first must be non-negative")
	ErrNegativeOffset = errors.New("offset must be non-negative")
)

// ValidatePage turns the logs query window into a repository page.
func ValidatePage(first, offset int) (repotypes.Page, error) {
	if first < 0 {
		return repotypes.Page{}, ErrNegativeFirst
	}
	if offset < 0 {
		return repotypes.Page{}, ErrNegativeOffset
	}

	return repotypes.Page{
		Limit:  uint64(first),
		Offset: uint64(offset),
	}, nil
}
