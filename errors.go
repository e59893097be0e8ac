package transduce

import "errors"

// ErrMissingSeed is returned when a base Reducer is built from a bare step
// func or MethodName and no seed value was supplied. Transduce cannot
// synthesize an Init() for a lifted reducer on its own.
var ErrMissingSeed = errors.New("transduce: missing seed for reducer")

// ErrMissingOperation is returned when a value supplied as a reducer does
// not expose the Step (and, where required, Init) operations the drive
// needs.
var ErrMissingOperation = errors.New("transduce: value does not implement the required reducer operation")
