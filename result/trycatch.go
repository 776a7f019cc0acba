package result

import "github.com/charmingruby/outcome/internal/panics"

// PanicError is the cause handed to TryCatch's onError when run panics. Value
// holds what was passed to panic and Stack the goroutine stack at recovery.
type PanicError = panics.Error

// TryCatch runs fn and converts its outcome into a Result. A returned error or
// a panic is passed to onError, whose return value becomes the Failure
// payload. trace is the recovered stack for a panic and nil for a returned
// error. A panic inside onError itself is not guarded.
//
// Example:
//
//	res := result.TryCatch(
//		func() (int, error) { return strconv.Atoi(raw) },
//		func(cause error, _ []byte) ParseError { return ParseError{Msg: cause.Error()} },
//	)
func TryCatch[S any, F comparable](run func() (S, error), onError func(cause error, trace []byte) F) Result[S, F] {
	var (
		value S
		err   error
	)
	if pe := panics.Guard(func() { value, err = run() }); pe != nil {
		return Failure[S](onError(pe, pe.Stack))
	}
	if err != nil {
		return Failure[S](onError(err, nil))
	}
	return Success[S, F](value)
}
