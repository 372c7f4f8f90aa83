package linkcheck

import "errors"

var (
	// ErrMagicMismatch indicates the accessor output differed from Magic.
	ErrMagicMismatch = errors.New("magic string mismatch")
	// ErrDependencyNotLinked indicates the JSON library is absent from the
	// binary's module build info.
	ErrDependencyNotLinked = errors.New("json library not linked")
	// ErrReportInvalid indicates the verification report does not satisfy
	// the report schema.
	ErrReportInvalid = errors.New("report does not match schema")
)
