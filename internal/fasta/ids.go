package fasta

import (
	"context"
	"strings"
)

// ExtractID returns the accession from a pipe-delimited id such as
// "sp|P12345|NAME" (field 1). An id with no '|' is returned unchanged.
func ExtractID(id string) string {
	parts := strings.Split(id, "|")
	if len(parts) > 1 {
		return parts[1]
	}
	return id
}

// ExtractIDs returns one identifier per record of the FASTA file at path, in
// file order. Identifiers are neither deduplicated nor checked for content;
// a header with no id yields "" and a warning.
func ExtractIDs(ctx context.Context, path string, warn WarnFunc) ([]string, error) {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	var ids []string
	err := StreamHeadersPathCtx(ctx, path, warn, func(r Record) error {
		if r.ID == "" {
			warn("line %d: header has no identifier; using empty identifier", r.Line)
		}
		ids = append(ids, ExtractID(r.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
