// Package panicerr turns panics raised by a function into error returns.
package panicerr

// Recover calls f, converting any panic that escapes it into a non-nil error
// carrying the panic value and stack. Unlike a goroutine boundary, f runs on
// the caller's goroutine so it may freely share unsynchronized state.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = newPanicError(name, e)
		}
	}()
	return f()
}
