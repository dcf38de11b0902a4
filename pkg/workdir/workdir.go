// Package workdir asks the operating system for the current working directory
// of the process using a two-call protocol: one call to learn the required
// buffer size, a second call to fill a buffer of exactly that size.
package workdir

import (
	"bytes"
)

// PathBuffer holds the working directory path followed by a NUL terminator.
// It is sized exactly to what the OS reported as required.
type PathBuffer []byte

// String returns the contents of the buffer up to the first NUL byte.
func (b PathBuffer) String() string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// Querier is the OS facility used to read the current working directory. Its
// contract follows GetCurrentDirectoryA:
//
// RequiredSize returns the number of bytes needed to hold the path including
// the terminator, or 0 if the OS could not tell.
//
// Fill writes the path into buf, whose length is the requested size. It
// returns the number of bytes written not counting the terminator. If buf is
// too small, it writes nothing and returns the required size. On failure it
// returns 0 along with the cause.
type Querier interface {
	RequiredSize() uint32
	Fill(buf PathBuffer) (uint32, error)
}

// Outcome classifies the result of the second call.
type Outcome int

const (
	// Failed means the OS wrote nothing.
	Failed Outcome = iota
	// WroteFull means the path and its terminator filled the buffer exactly,
	// i.e. Fill returned the requested size minus one as GetCurrentDirectoryA
	// does on success. A literal "requested size plus one" check would never
	// match on a real OS.
	WroteFull
	// SomethingElse means the OS reported a size that does not match the
	// buffer, e.g. the directory changed between the two calls.
	SomethingElse
)

// String returns the console line reported for the outcome.
func (o Outcome) String() string {
	switch o {
	case Failed:
		return "Error"
	case WroteFull:
		return "wrote full"
	default:
		return "something else"
	}
}

// Result is what a Query observed.
type Result struct {
	Required uint32 // size reported by the first call
	Written  uint32 // value returned by the second call
	Outcome  Outcome
	Buffer   PathBuffer
}

// Path returns the directory held in the buffer.
func (r Result) Path() string { return r.Buffer.String() }

// Classify maps the size passed to Fill and the value it returned to an
// Outcome.
func Classify(requested, written uint32) Outcome {
	switch {
	case written == 0:
		return Failed
	case uint64(written)+1 == uint64(requested):
		return WroteFull
	default:
		return SomethingElse
	}
}

// Query runs the size query, allocates a buffer of exactly the reported size
// and asks q to fill it. A zero result from the second call is reported as a
// *QueryFailure; every other outcome is returned with a nil error.
func Query(q Querier) (Result, error) {
	n := q.RequiredSize()
	buf := make(PathBuffer, n)

	w, err := q.Fill(buf)
	res := Result{
		Required: n,
		Written:  w,
		Outcome:  Classify(n, w),
		Buffer:   buf,
	}
	if res.Outcome == Failed {
		return res, &QueryFailure{Requested: n, Err: err}
	}
	return res, nil
}
