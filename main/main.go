package main

import (
	"io"
	"os"
	"strings"

	"github.com/Azure/workdir-printer/pkg/workdir"
	"github.com/go-kit/kit/log"
	"github.com/google/uuid"
)

func main() {
	// stdout carries only the program output; logs go to stderr
	ctx := newLogger(os.Stderr)
	os.Exit(run(ctx, cmdPrint, workdir.System(), os.Stdout, spin))
}

// newLogger returns a logfmt logger writing to w, tagged with the time, the
// build version and an id unique to this run.
func newLogger(w io.Writer) *log.Context {
	return log.NewContext(log.NewSyncLogger(log.NewLogfmtLogger(w))).
		With("time", log.DefaultTimestamp).
		With("version", VersionString()).
		With("run", uuid.New().String())
}

// run invokes c and, if it succeeds, hands control to idle. It returns the
// exit code for the process: c.failExitCode if c failed, otherwise 0 once
// idle returns (which the production idle never does).
func run(ctx *log.Context, c cmd, q workdir.Querier, out io.Writer, idle func()) int {
	ctx = ctx.With("operation", strings.ToLower(c.name))

	ctx.Log("event", "start", "build", DetailedVersionString())
	if err := c.f(ctx, q, out); err != nil {
		ctx.Log("event", "failed to handle", "error", err)
		return c.failExitCode
	}
	ctx.Log("event", "idle")
	idle()
	return 0
}
