// Package pipeline runs the naive baseline end to end: term frequencies from
// the training file, identifiers from the test FASTA, then the submission.
//
// The two readers share nothing; the writer consumes both results once
// they are complete, so no output exists unless both inputs parsed.
package pipeline
