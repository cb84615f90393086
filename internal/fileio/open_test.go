package fileio

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plain = ">seq1\nACGT\n>seq2\nNNnn\n"

func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())
	return path
}

func readAll(t *testing.T, path string) string {
	t.Helper()
	rc, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.fa")
	require.NoError(t, os.WriteFile(path, []byte(plain), 0o644))
	assert.Equal(t, plain, readAll(t, path))
}

func TestOpenGzipBySuffix(t *testing.T) {
	assert.Equal(t, plain, readAll(t, writeGz(t, "x.fa.gz", plain)))
}

func TestOpenGzipByMagic(t *testing.T) {
	// no .gz suffix; detection relies on the 1F 8B header
	assert.Equal(t, plain, readAll(t, writeGz(t, "x.fa", plain)))
}

func TestOpenTinyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one")
	require.NoError(t, os.WriteFile(path, []byte(">"), 0o644))
	assert.Equal(t, ">", readAll(t, path))
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.tsv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() {
		_, _ = io.WriteString(w, plain)
		_ = w.Close()
	}()
	assert.Equal(t, plain, readAll(t, "-"))
}

func TestErrorsUnwrap(t *testing.T) {
	in := &InputFormatError{Input: "training terms", Path: "t.tsv", Line: 3, Err: os.ErrNotExist}
	assert.EqualError(t, in, "training terms t.tsv:3: file does not exist")
	assert.ErrorIs(t, in, os.ErrNotExist)

	out := &OutputWriteError{Op: "create directory", Path: "/x", Err: os.ErrPermission}
	wrapped := fmt.Errorf("write submission: %w", out)
	var target *OutputWriteError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "/x", target.Path)
	assert.ErrorIs(t, wrapped, os.ErrPermission)
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(fmt.Errorf("flush: %w", syscall.EPIPE)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.False(t, IsBrokenPipe(nil))
	assert.False(t, IsBrokenPipe(io.EOF))
}
