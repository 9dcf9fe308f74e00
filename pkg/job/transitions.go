package job

import (
	"fmt"

	"github.com/artem13815/fundi/pkg/apperr"
)

// allowed holds the status moves Update may perform. Nothing moves into
// accepted here; that status is entered only through AssignOnAcceptance.
var allowed = map[Status][]Status{
	StatusPending:    {StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  nil,
	StatusCancelled:  nil,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	_, ok := allowed[s]
	return ok
}

// CanMove reports whether Update may take a job from one status to another.
func CanMove(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

func moveError(from, to Status) error {
	return apperr.Validation(fmt.Sprintf("illegal status transition %s -> %s", from, to))
}
