package service

import "errors"

// ErrEmptyQuery indicates there was no profile, skill, or resume signal
// to build a ranking query from. It means "nothing to rank", not a
// failure: callers return the job list with prior scores untouched.
var ErrEmptyQuery = errors.New("empty match query")
