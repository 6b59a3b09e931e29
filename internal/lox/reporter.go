package lox

import (
	"fmt"
	"io"
)

// Reporter collects diagnostics from the scanner, parser, and resolver, and
// separately tracks runtime faults raised by the Interpreter. Splitting the
// two lets a caller (the CLI, the REPL) pick the right exit code: 65 for a
// reported static fault, 70 for a runtime fault.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes every reported error, as-is, to an underlying
// io.Writer — stderr for the CLI, a strings.Builder in tests.
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a Reporter that writes to writer.
func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer: writer}
}

func (reporter *SimpleReporter) Report(err error) {
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

// Reset clears both error flags, used by the REPL between lines so one bad
// line doesn't poison the exit status of the rest of the session.
func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}
