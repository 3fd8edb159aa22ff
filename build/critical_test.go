package build

import "testing"

// TestCritical checks that Critical panics when DEBUG is set, which it is
// for this test binary because it is built without the "release" tag.
func TestCritical(t *testing.T) {
	killstring := "Critical error: critical test killstring\n"
	defer func() {
		r := recover()
		if r != killstring {
			t.Errorf("panic message = %q, want %q", r, killstring)
		}
	}()
	Critical("critical test killstring")
}

// TestCriticalVariadic checks that multiple arguments are space-joined the
// same way fmt.Sprintln joins them.
func TestCriticalVariadic(t *testing.T) {
	killstring := "Critical error: variadic critical test killstring\n"
	defer func() {
		r := recover()
		if r != killstring {
			t.Errorf("panic message = %q, want %q", r, killstring)
		}
	}()
	Critical("variadic", "critical", "test", "killstring")
}
