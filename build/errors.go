package build

import (
	"errors"
	"strings"
)

// ComposeErrors takes multiple errors and composes them into a single error
// with a longer message. Nil errors are stripped; if none remain, nil is
// returned.
func ComposeErrors(errs ...error) error {
	var errStrings []string
	for _, err := range errs {
		if err != nil {
			errStrings = append(errStrings, err.Error())
		}
	}
	if len(errStrings) == 0 {
		return nil
	}
	return errors.New(strings.Join(errStrings, "; "))
}

// ExtendErr returns a new error which extends err with a prefix string. If
// err is nil, ExtendErr returns nil, discarding the prefix.
func ExtendErr(s string, err error) error {
	if err == nil {
		return nil
	}
	return errors.New(s + ": " + err.Error())
}
