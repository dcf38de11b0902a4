package main

import (
	"fmt"
	"io"

	"github.com/Azure/workdir-printer/pkg/workdir"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
)

// printWorkingDirectory queries the working directory through q and writes
// the outcome line followed by the path to out. On a query failure only the
// "Error" line is written and the failure is returned.
func printWorkingDirectory(ctx *log.Context, q workdir.Querier, out io.Writer) error {
	ctx.Log("event", "querying current directory")
	res, err := workdir.Query(q)
	ctx = ctx.With("required", res.Required, "written", res.Written)

	if err != nil {
		ctx.Log("event", "query failed", "error", err)
		if _, werr := fmt.Fprintln(out, res.Outcome); werr != nil {
			ctx.Log("event", "failed to write output", "error", werr)
		}
		return errors.Wrap(err, "failed to get current directory")
	}
	if res.Outcome != workdir.WroteFull {
		// the OS reported a size other than the one it asked for
		ctx.Log("event", "size mismatch", "outcome", res.Outcome.String())
	}

	if _, err := fmt.Fprintf(out, "%s\n%s\n", res.Outcome, res.Path()); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	ctx.Log("event", "printed current directory", "path", res.Path())
	return nil
}
