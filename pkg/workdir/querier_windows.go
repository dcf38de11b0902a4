//go:build windows

package workdir

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modkernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procGetCurrentDirectoryA = modkernel32.NewProc("GetCurrentDirectoryA")
)

// System returns the querier backed by GetCurrentDirectoryA.
func System() Querier { return ansiQuerier{} }

type ansiQuerier struct{}

func (ansiQuerier) RequiredSize() uint32 {
	if err := procGetCurrentDirectoryA.Find(); err != nil {
		return 0
	}
	r, _, _ := procGetCurrentDirectoryA.Call(0, 0)
	return uint32(r)
}

func (ansiQuerier) Fill(buf PathBuffer) (uint32, error) {
	if err := procGetCurrentDirectoryA.Find(); err != nil {
		return 0, errors.Wrap(err, "GetCurrentDirectoryA")
	}
	var p *byte
	if len(buf) > 0 {
		p = &buf[0]
	}
	r, _, err := procGetCurrentDirectoryA.Call(
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(p)))
	if r == 0 {
		return 0, errors.Wrap(err, "GetCurrentDirectoryA")
	}
	return uint32(r), nil
}
