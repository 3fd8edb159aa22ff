package build

import (
	"errors"
	"testing"
)

// TestComposeErrors tests that ComposeErrors only returns non-nil when
// there are non-nil elements in errs, and that the returned error's
// message concatenates the messages of the non-nil elements, in order,
// separated by "; ".
func TestComposeErrors(t *testing.T) {
	tests := []struct {
		errs       []error
		wantNil    bool
		errStrWant string
	}{
		// ComposeErrors returns nil when errs is nil.
		{
			wantNil: true,
		},
		// ComposeErrors returns nil when errs is an empty slice.
		{
			errs:    []error{},
			wantNil: true,
		},
		// ComposeErrors returns nil when errs has only nil elements.
		{
			errs:    []error{nil, nil},
			wantNil: true,
		},
		// ComposeErrors returns a single message unchanged.
		{
			errs:       []error{errors.New("foo")},
			errStrWant: "foo",
		},
		// ComposeErrors joins multiple non-nil messages with "; ", skipping
		// any nil elements.
		{
			errs:       []error{nil, errors.New("foo"), nil, errors.New("bar")},
			errStrWant: "foo; bar",
		},
	}
	for _, tt := range tests {
		err := ComposeErrors(tt.errs...)
		if tt.wantNil && err != nil {
			t.Errorf("expected nil error, got %q", err)
		} else if !tt.wantNil && (err == nil || err.Error() != tt.errStrWant) {
			t.Errorf("ComposeErrors(%v) = %v, want %q", tt.errs, err, tt.errStrWant)
		}
	}
}

// TestExtendErr tests that ExtendErr discards the prefix on a nil error and
// otherwise prepends "prefix: " to the wrapped error's message.
func TestExtendErr(t *testing.T) {
	if got := ExtendErr("prefix", nil); got != nil {
		t.Errorf("ExtendErr with a nil error = %v, want nil", got)
	}

	got := ExtendErr("unable to do thing", errors.New("underlying failure"))
	want := "unable to do thing: underlying failure"
	if got == nil || got.Error() != want {
		t.Errorf("ExtendErr = %v, want %q", got, want)
	}
}
