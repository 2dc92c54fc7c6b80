package orchestrator

import "fmt"

// Kind classifies why a run failed.
type Kind int

const (
	KindFontNotFound Kind = iota + 1
	KindInputNotFound
	KindEmptyInput
	KindDecode
	KindOutput
	KindCancelled
)

// String returns the name of the failure kind.
func (k Kind) String() string {
	switch k {
	case KindFontNotFound:
		return "FontNotFound"
	case KindInputNotFound:
		return "InputNotFound"
	case KindEmptyInput:
		return "EmptyInput"
	case KindDecode:
		return "DecodeError"
	case KindOutput:
		return "OutputError"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ExitCode returns the process exit code for the failure kind.
// Output failures use 2 so they can be told apart from input-side failures.
func (k Kind) ExitCode() int {
	if k == KindOutput {
		return 2
	}
	return 1
}

// message returns the l10n key of the single user-facing line for the kind.
func (k Kind) message() string {
	switch k {
	case KindFontNotFound:
		return "Font not found... Please specify a valid font path."
	case KindInputNotFound:
		return "Input folder not found... Please specify a valid input folder."
	case KindEmptyInput:
		return "No images were found... Please specify a valid input folder."
	case KindOutput:
		return "Something went wrong... Your output filepath may be invalid."
	case KindDecode:
		return "Failed to prepare frame: %s"
	default:
		return "Run cancelled: %s"
	}
}

// RunError is returned by Orchestrator.Run when the pipeline stops early.
type RunError struct {
	Kind  Kind
	State State  // Last state reached before the failure
	Path  string // File involved in the failure, if any
	Err   error
}

func (e *RunError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s (%s): %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this failure.
func (e *RunError) ExitCode() int {
	return e.Kind.ExitCode()
}
