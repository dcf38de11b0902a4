package main

import (
	"bytes"
	"testing"

	"github.com/Azure/workdir-printer/pkg/workdir"
	"github.com/go-kit/kit/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// stubQuerier returns canned answers and records the buffer sizes it was given.
type stubQuerier struct {
	path     string
	required uint32
	written  uint32
	err      error

	fillSizes []int
}

func (s *stubQuerier) RequiredSize() uint32 { return s.required }

func (s *stubQuerier) Fill(buf workdir.PathBuffer) (uint32, error) {
	s.fillSizes = append(s.fillSizes, len(buf))
	copy(buf, s.path)
	return s.written, s.err
}

// pathQuerier answers like a well-behaved OS for path.
func pathQuerier(path string) *stubQuerier {
	return &stubQuerier{
		path:     path + "\x00",
		required: uint32(len(path) + 1),
		written:  uint32(len(path)),
	}
}

func nopContext() *log.Context { return log.NewContext(log.NewNopLogger()) }

func Test_printWorkingDirectory_wroteFull(t *testing.T) {
	var out bytes.Buffer
	q := pathQuerier("/var/lib/waagent")

	require.Nil(t, printWorkingDirectory(nopContext(), q, &out))
	require.Equal(t, "wrote full\n/var/lib/waagent\n", out.String())
	require.Equal(t, []int{len("/var/lib/waagent") + 1}, q.fillSizes)
}

func Test_printWorkingDirectory_somethingElse(t *testing.T) {
	var out bytes.Buffer
	q := pathQuerier(`C:\src`)
	q.written = q.required + 1

	require.Nil(t, printWorkingDirectory(nopContext(), q, &out))
	require.Equal(t, "something else\nC:\\src\n", out.String())
}

func Test_printWorkingDirectory_error(t *testing.T) {
	var out bytes.Buffer
	q := pathQuerier("/gone")
	q.written = 0
	q.err = errors.New("no such file or directory")

	err := printWorkingDirectory(nopContext(), q, &out)
	require.NotNil(t, err)
	require.True(t, workdir.IsQueryFailure(err))
	require.Contains(t, err.Error(), "failed to get current directory")
	require.Contains(t, err.Error(), "no such file or directory")
	require.Equal(t, "Error\n", out.String(), "path must not be printed")
}

func Test_printWorkingDirectory_errorLogsSizes(t *testing.T) {
	var logs, out bytes.Buffer
	ctx := log.NewContext(log.NewLogfmtLogger(&logs))
	q := &stubQuerier{required: 7, err: errors.New("access denied")}

	require.NotNil(t, printWorkingDirectory(ctx, q, &out))
	require.Contains(t, logs.String(), `required=7 written=0 event="query failed"`)
	require.Contains(t, logs.String(), "access denied")
}

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func Test_printWorkingDirectory_errorWriteFails(t *testing.T) {
	var logs bytes.Buffer
	ctx := log.NewContext(log.NewLogfmtLogger(&logs))
	q := &stubQuerier{required: 7}

	err := printWorkingDirectory(ctx, q, brokenWriter{})
	require.NotNil(t, err)
	require.True(t, workdir.IsQueryFailure(err))
	require.Contains(t, logs.String(), `event="failed to write output" error="broken pipe"`)
}

func Test_printWorkingDirectory_writeFails(t *testing.T) {
	err := printWorkingDirectory(nopContext(), pathQuerier("/srv"), brokenWriter{})
	require.NotNil(t, err)
	require.False(t, workdir.IsQueryFailure(err))
	require.Contains(t, err.Error(), "failed to write output: broken pipe")
}

func Test_printWorkingDirectory_logs(t *testing.T) {
	var logs, out bytes.Buffer
	ctx := log.NewContext(log.NewLogfmtLogger(&logs))

	require.Nil(t, printWorkingDirectory(ctx, pathQuerier("/srv"), &out))
	require.Contains(t, logs.String(), `required=5 written=4 event="printed current directory" path=/srv`)
	require.NotContains(t, logs.String(), "size mismatch")
}
