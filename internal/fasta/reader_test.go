package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naivebaseline/internal/fileio"
)

const superset = `>sp|P1|PROT1_HUMAN Protein one OS=Homo sapiens
MKTAYIAKQR
QISFVKSHFS
>sp|P2|PROT2_MOUSE Protein two
MSEQ
>NAME_ONLY
ACDE
`

type warnings []string

func (w *warnings) add(format string, a ...any) { *w = append(*w, fmt.Sprintf(format, a...)) }

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestExtractID(t *testing.T) {
	cases := map[string]string{
		"sp|P12345|NAME": "P12345",
		"NAME_ONLY":      "NAME_ONLY",
		"tr|A0A0|":       "A0A0",
		"a|":             "",
		"|x":             "x",
		"a|b|c|d":        "b",
		"":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, ExtractID(in), "ExtractID(%q)", in)
	}
}

func TestExtractIDs(t *testing.T) {
	var w warnings
	ids, err := ExtractIDs(context.Background(), writeFile(t, "test.fasta", superset), w.add)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"P1", "P2", "NAME_ONLY"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, w)
}

func TestExtractIDsKeepsDuplicatesAndOrder(t *testing.T) {
	data := ">sp|B|x\nA\n>sp|A|y\nA\n>sp|B|z\nA\n"
	ids, err := ExtractIDs(context.Background(), writeFile(t, "d.fa", data), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "B"}, ids)
}

func TestStreamHeadersRecords(t *testing.T) {
	var got []Record
	err := StreamHeadersCtx(context.Background(), strings.NewReader(superset), nil, func(r Record) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, Record{ID: "sp|P1|PROT1_HUMAN", Line: 1}, got[0])
	assert.Equal(t, 4, got[1].Line)
}

func TestStreamHeadersCRLFAndBlankLines(t *testing.T) {
	data := ">sp|Q1|A desc\r\nMK\r\n\r\n\n>  tr|Q2|B\r\nMK\r\n"
	var ids []string
	err := StreamHeadersCtx(context.Background(), strings.NewReader(data), nil, func(r Record) error {
		ids = append(ids, r.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sp|Q1|A", "tr|Q2|B"}, ids)
}

func TestMalformedRecordsWarn(t *testing.T) {
	data := "MKLV\nAAAA\n>sp|P1|X\nMK\n>\nMK\n>   \n>sp|P2|Y\nMK\n"
	var w warnings
	ids, err := ExtractIDs(context.Background(), writeFile(t, "bad.fa", data), w.add)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "", "", "P2"}, ids)
	assert.Equal(t, warnings{
		"line 1: sequence data before first header; skipping",
		"line 5: header has no identifier; using empty identifier",
		"line 7: header has no identifier; using empty identifier",
	}, w)
}

func TestEmptyHeaderKeptLikeEmptyField(t *testing.T) {
	data := ">sp|P1|A\nMK\n>\nMK\n>a|\nMK\n"
	ids, err := ExtractIDs(context.Background(), writeFile(t, "e.fa", data), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "", ""}, ids)
}

func TestStreamHeadersEmitsEmptyID(t *testing.T) {
	var got []Record
	err := StreamHeadersCtx(context.Background(), strings.NewReader(">x\n> \t\r\n"), nil, func(r Record) error {
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: "x", Line: 1}, {ID: "", Line: 2}}, got)
}

func TestEmptyFileYieldsNoIDs(t *testing.T) {
	ids, err := ExtractIDs(context.Background(), writeFile(t, "empty.fa", ""), nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestExtractIDsGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.fasta.gz")
	fh, err := os.Create(path)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(superset))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	ids, err := ExtractIDs(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Len(t, ids, 3)
}

func TestExtractIDsMissingFile(t *testing.T) {
	_, err := ExtractIDs(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), nil)
	var ife *fileio.InputFormatError
	require.ErrorAs(t, err, &ife)
	assert.Equal(t, InputName, ife.Input)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStreamHeadersCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := StreamHeadersPathCtx(ctx, writeFile(t, "x.fa", superset), nil, func(Record) error {
		n++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	var ife *fileio.InputFormatError
	assert.False(t, errors.As(err, &ife), "cancellation is not an input error")
}

func TestStreamHeadersEmitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := StreamHeadersCtx(context.Background(), strings.NewReader(superset), nil, func(Record) error {
		n++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)
}
