package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"bridges/internal/blast"
	"bridges/internal/model"
	"bridges/internal/storage"
)

const archiveURLExpiry = time.Hour

// BlastRunner is the part of the BLAST bridge the service drives.
// *blast.Client implements it.
type BlastRunner interface {
	Run(ctx context.Context, req model.BlastRequest) (string, error)
	Status(ctx context.Context, jobID string) (model.BlastJobStatus, error)
	Result(ctx context.Context, jobID, resultType string) ([]byte, error)
}

var _ BlastRunner = (*blast.Client)(nil)

// BlastJob is the service-level view of a submitted job.
type BlastJob struct {
	ID     string               `json:"id"`
	Status model.BlastJobStatus `json:"status"`
}

// BlastHitsResult carries the filtered hits of a finished job.
type BlastHitsResult struct {
	JobID      string           `json:"job_id"`
	Total      int              `json:"total"`
	Hits       []model.BlastHit `json:"hits"`
	ArchiveURL string           `json:"archive_url,omitempty"`
}

// BlastService defines the BLAST use cases.
type BlastService interface {
	// Submit starts a job and reports its initial status.
	Submit(ctx context.Context, req model.BlastRequest) (*BlastJob, error)

	// Status returns the current status of a job.
	Status(ctx context.Context, id string) (*BlastJob, error)

	// Hits returns the hits of a finished job matching filter. The XML result
	// is archived in object storage on first read and served from there
	// afterwards, so hits outlive the remote result retention.
	Hits(ctx context.Context, id string, filter model.BlastFilter) (*BlastHitsResult, error)
}

type blastService struct {
	runner BlastRunner
	store  storage.Storage
	log    logrus.FieldLogger
}

// NewBlastService constructs a BlastService. store may be nil, in which case
// results are always fetched from the remote service.
func NewBlastService(runner BlastRunner, store storage.Storage, log logrus.FieldLogger) BlastService {
	return &blastService{runner: runner, store: store, log: log}
}

func (s *blastService) Submit(ctx context.Context, req model.BlastRequest) (*BlastJob, error) {
	id, err := s.runner.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.WithField("job_id", id).Info("blast_job_submitted")
	return &BlastJob{ID: id, Status: model.BlastQueued}, nil
}

func (s *blastService) Status(ctx context.Context, id string) (*BlastJob, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	st, err := s.runner.Status(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == model.BlastNotFound {
		return nil, ErrNotFound
	}
	return &BlastJob{ID: id, Status: st}, nil
}

func (s *blastService) Hits(ctx context.Context, id string, filter model.BlastFilter) (*BlastHitsResult, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	raw, archived := s.archived(ctx, id)
	if !archived {
		st, err := s.runner.Status(ctx, id)
		if err != nil {
			return nil, err
		}
		switch st {
		case model.BlastFinished:
		case model.BlastNotFound:
			return nil, ErrNotFound
		case model.BlastError, model.BlastFailure:
			return nil, fmt.Errorf("job %s is %s: %w", id, st, ErrJobFailed)
		default:
			return nil, fmt.Errorf("job %s is %s: %w", id, st, ErrJobNotFinished)
		}

		raw, err = s.runner.Result(ctx, id, blast.ResultXML)
		if err != nil {
			return nil, err
		}
		archived = s.archive(ctx, id, raw)
	}

	hits, err := blast.ParseXML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse blast result: %w", err)
	}
	hits = blast.Filter(hits, filter)

	res := &BlastHitsResult{JobID: id, Total: len(hits), Hits: hits}
	if archived {
		u, err := s.store.PresignGet(ctx, storage.BlastArchiveKey(id), archiveURLExpiry)
		if err != nil {
			s.log.WithError(err).WithField("job_id", id).Warn("blast_archive_presign_failed")
		} else {
			res.ArchiveURL = u
		}
	}
	return res, nil
}

// archived reads a previously archived result. Any failure counts as a miss.
func (s *blastService) archived(ctx context.Context, id string) ([]byte, bool) {
	if s.store == nil {
		return nil, false
	}
	rc, _, err := s.store.Get(ctx, storage.BlastArchiveKey(id))
	if err != nil {
		return nil, false
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil || len(raw) == 0 {
		return nil, false
	}
	return raw, true
}

// archive stores raw. Failing to archive does not fail the request.
func (s *blastService) archive(ctx context.Context, id string, raw []byte) bool {
	if s.store == nil {
		return false
	}
	_, err := s.store.Put(ctx, storage.BlastArchiveKey(id), bytes.NewReader(raw), storage.PutObjectOptions{
		Size:        int64(len(raw)),
		ContentType: "application/xml",
		Metadata:    map[string]string{"job-id": id},
	})
	if err != nil {
		s.log.WithError(err).WithField("job_id", id).Warn("blast_archive_failed")
		return false
	}
	return true
}
