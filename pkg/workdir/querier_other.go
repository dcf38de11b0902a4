//go:build !linux && !windows

package workdir

import "github.com/pkg/errors"

var errUnsupported = errors.New("workdir: unsupported platform")

// System returns a querier that always fails on this platform.
func System() Querier { return unsupportedQuerier{} }

type unsupportedQuerier struct{}

func (unsupportedQuerier) RequiredSize() uint32 { return 0 }

func (unsupportedQuerier) Fill(PathBuffer) (uint32, error) { return 0, errUnsupported }
