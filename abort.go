package robintable

import (
	"fmt"
	"os"
)

// abortHook is called with a descriptive message on a contract violation —
// an uninitialized table used, a nil callback, a setter called after Init,
// a structural mutation attempted while an iterator is open, and so on —
// just before the process terminates. The default prints to stderr and
// exits; SetAbortHook lets tests install a hook that panics instead so the
// abort path itself can be asserted on without killing the test binary.
var abortHook = defaultAbortHook

func defaultAbortHook(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}

// SetAbortHook installs a custom contract-violation handler. Passing nil
// restores the default stderr-and-exit behavior.
func SetAbortHook(hook func(msg string)) {
	if hook == nil {
		hook = defaultAbortHook
	}
	abortHook = hook
}

func abortf(format string, args ...any) {
	abortHook(fmt.Sprintf(format, args...))
}
