// Package storage keeps large bridge artefacts out of Postgres: raw BLAST
// result archives and the OBO sources the ontology store is imported from.
// Objects are streamed; nothing touches local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutObjectOptions define optional parameters for uploading objects.
// Size is the exact number of bytes, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is an S3-compatible object store.
type Storage interface {
	// Put uploads an object under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get returns the object content as a stream alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// BlastArchiveKey is where the XML result of a BLAST job is archived.
func BlastArchiveKey(jobID string) string {
	return "blast/" + jobID + ".xml"
}

// OntologySourceKey is where an uploaded OBO source is kept.
func OntologySourceKey(ontology, name string) string {
	return "ontologies/" + ontology + "/" + name
}
