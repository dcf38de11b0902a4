package main

import (
	"io"

	"github.com/Azure/workdir-printer/pkg/workdir"
	"github.com/go-kit/kit/log"
)

type cmdFunc func(ctx *log.Context, q workdir.Querier, out io.Writer) error

type cmd struct {
	f            cmdFunc // associated function
	name         string  // human readable string
	failExitCode int     // exitCode to use when the command fails
}

// cmdPrint is the only thing the program does; it takes no arguments.
var cmdPrint = cmd{printWorkingDirectory, "PrintWorkingDirectory", 1}
