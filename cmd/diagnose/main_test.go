package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile writes a one-block HDF4 file with a null record, a number type
// and an unknown record.
func writeFile(t *testing.T) string {
	t.Helper()

	buf := []byte{0x0E, 0x03, 0x13, 0x01}
	buf = binary.BigEndian.AppendUint16(buf, 3)
	buf = binary.BigEndian.AppendUint32(buf, 0)

	payloads := 4 + 6 + 3*12
	record := func(tag, ref uint16, offset, length uint32) {
		buf = binary.BigEndian.AppendUint16(buf, tag)
		buf = binary.BigEndian.AppendUint16(buf, ref)
		buf = binary.BigEndian.AppendUint32(buf, offset)
		buf = binary.BigEndian.AppendUint32(buf, length)
	}
	record(1, 0, 0, 0)
	record(106, 1, uint32(payloads), 4)
	record(9999, 2, uint32(payloads+4), 3)
	buf = append(buf, 1, 5, 32, 1)
	buf = append(buf, 0xAA, 0xBB, 0xCC)

	path := filepath.Join(t.TempDir(), "sample.hdf")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestRun(t *testing.T) {
	path := writeFile(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "Records: 3")
	require.Contains(t, out, "NumberType{version=1 type=5 width=32 class=1}")
	require.Contains(t, out, "Unknown{tag(9999), 3 bytes}")
	require.NotContains(t, out, "DFTAG_NULL")
	require.NotContains(t, out, "aa bb cc")
}

func TestRunFlags(t *testing.T) {
	path := writeFile(t)

	t.Run("keep nulls", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{"--keep-nulls", path}, &stdout, &stderr))
		require.Contains(t, stdout.String(), "DFTAG_NULL")
	})

	t.Run("tag filter", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{"--tag", "106", path}, &stdout, &stderr))
		require.Contains(t, stdout.String(), "DFTAG_NT")
		require.NotContains(t, stdout.String(), "tag(9999)")
	})

	t.Run("raw", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.Equal(t, exitOK, run([]string{"--raw", path}, &stdout, &stderr))
		require.Contains(t, stdout.String(), "aa bb cc")
	})
}

func TestRunErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.Equal(t, exitUsage, run(nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "Usage: diagnose")

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"--tag", "70000", "x.hdf"}, &stdout, &stderr))

	stderr.Reset()
	require.Equal(t, exitUsage, run([]string{"--tag", "-5", "x.hdf"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "not in 0..65535")

	stderr.Reset()
	missing := filepath.Join(t.TempDir(), "missing.hdf")
	require.Equal(t, exitError, run([]string{missing}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "Failed to open file")

	stderr.Reset()
	bad := filepath.Join(t.TempDir(), "bad.hdf")
	require.NoError(t, os.WriteFile(bad, make([]byte, 16), 0o644))
	require.Equal(t, exitError, run([]string{bad}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "invalid magic number")
}
