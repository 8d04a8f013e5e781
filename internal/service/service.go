// Package service holds the use cases the gateway and CLI share on top of the
// bridges: BLAST jobs with archived results and the local ontology store.
package service

import "errors"

var (
	ErrIDRequired       = errors.New("id is required")
	ErrNotFound         = errors.New("not found")
	ErrReaderNil        = errors.New("reader is nil")
	ErrOntologyRequired = errors.New("ontology is required")
	ErrJobNotFinished   = errors.New("blast job has not finished")
	ErrJobFailed        = errors.New("blast job failed")
)
