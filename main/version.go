package main

import (
	"fmt"
	"runtime"
)

// Build metadata, injected at link time:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   string
	GitCommit string
	BuildDate string
	State     string // empty for a clean tree, e.g. "dirty" otherwise
)

// VersionString returns vVERSION/git@COMMIT, suffixed with -STATE when the
// tree was not clean.
func VersionString() string {
	s := fmt.Sprintf("v%s/git@%s", Version, GitCommit)
	if State != "" {
		s += "-" + State
	}
	return s
}

// DetailedVersionString adds the build date and the Go runtime version, e.g.
// v1.0.0 git:03669cef-clean build:2026-10-16T09:12:00Z go1.23.4
func DetailedVersionString() string {
	state := State
	if state == "" {
		state = "clean"
	}
	return fmt.Sprintf("v%s git:%s-%s build:%s %s", Version, GitCommit, state, BuildDate, runtime.Version())
}
