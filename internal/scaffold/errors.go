package scaffold

import (
	"errors"
)

// Kind classifies a fatal scaffold failure.
type Kind int

const (
	// KindUnclassified covers every failure without a dedicated kind.
	KindUnclassified Kind = iota
	// KindDirectoryExists means the target directory was already present.
	// Nothing was written.
	KindDirectoryExists
	// KindInstallFailed means dependency installation failed. Files written
	// before the install are left in place.
	KindInstallFailed
)

func (k Kind) String() string {
	switch k {
	case KindDirectoryExists:
		return "DirectoryExists"
	case KindInstallFailed:
		return "InstallFailed"
	default:
		return "Unclassified"
	}
}

// Error is a classified scaffold failure.
type Error struct {
	Kind Kind
	Name string // project name, for KindDirectoryExists
	Err  error
}

// Error returns "DirectoryExists:<name>", "InstallFailed", or the underlying message.
func (e *Error) Error() string {
	switch e.Kind {
	case KindDirectoryExists:
		return KindDirectoryExists.String() + ":" + e.Name
	case KindInstallFailed:
		return KindInstallFailed.String()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unclassified scaffold error"
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// NewDirectoryExists reports that <name> already exists in the working directory.
func NewDirectoryExists(name string) *Error {
	return &Error{Kind: KindDirectoryExists, Name: name}
}

// NewInstallFailed wraps a dependency installation failure.
func NewInstallFailed(err error) *Error {
	return &Error{Kind: KindInstallFailed, Err: err}
}

// KindOf classifies err. Errors that are not *Error are KindUnclassified.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnclassified
}

// Is reports whether err is a scaffold error of the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
