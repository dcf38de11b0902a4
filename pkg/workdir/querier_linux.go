//go:build linux

package workdir

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// maxProbeSize bounds the scratch buffer used to discover the path length.
const maxProbeSize = 1 << 20

// System returns the querier backed by the getcwd(2) syscall.
func System() Querier { return getcwdQuerier{} }

type getcwdQuerier struct{}

// RequiredSize probes getcwd(2) with a scratch buffer, doubling it on ERANGE.
// The syscall reports the path length including the terminator.
func (getcwdQuerier) RequiredSize() uint32 {
	for size := unix.PathMax; size <= maxProbeSize; size *= 2 {
		n, err := unix.Getcwd(make([]byte, size))
		if err == unix.ERANGE {
			continue
		}
		if err != nil {
			return 0
		}
		return uint32(n)
	}
	return 0
}

func (q getcwdQuerier) Fill(buf PathBuffer) (uint32, error) {
	n, err := unix.Getcwd(buf)
	if err == unix.ERANGE {
		// the directory grew since RequiredSize; report what it needs now
		if need := q.RequiredSize(); need != 0 {
			return need, nil
		}
	}
	if err != nil {
		return 0, errors.Wrap(err, "getcwd")
	}
	if n == 0 {
		return 0, nil
	}
	return uint32(n - 1), nil
}
