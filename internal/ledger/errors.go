package ledger

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEntry indicates a (name, pay date) pair already exists
	// for that entry kind.
	ErrDuplicateEntry = errors.New("entry already exists for that name and pay date")
	// ErrPastPeriod indicates a write against a fiscal period that is
	// frozen: materialization into any past period, or edits to entries
	// older than one period before the current one.
	ErrPastPeriod = errors.New("period is closed for changes")
	// ErrStateTransition indicates an attempt to move an entry's state
	// backward in its lifecycle.
	ErrStateTransition = errors.New("entry state can only move forward")
	// ErrReferenced indicates a delete was blocked because other records
	// still reference the row.
	ErrReferenced = errors.New("record is still referenced")
)
