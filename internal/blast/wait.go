package blast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"bridges/internal/bridge"
	"bridges/internal/model"
)

// ErrTimeout is returned by Wait when the job is still running at the ceiling.
var ErrTimeout = errors.New("blast job did not finish in time")

var errPending = errors.New("job pending")

// WaitOptions bounds status polling.
type WaitOptions struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

// DefaultWaitOptions polls after 3s, backs off to 30s between polls and gives
// up after 10 minutes.
func DefaultWaitOptions() WaitOptions {
	return WaitOptions{
		InitialInterval: 3 * time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsed:      10 * time.Minute,
	}
}

// Wait polls the job status until it is terminal. A FINISHED job returns its
// status with a nil error; ERROR, FAILURE and NOT_FOUND are returned together
// with a remote error. Transport errors during polling are retried, anything
// else stops polling.
func (c *Client) Wait(ctx context.Context, jobID string, opts WaitOptions) (model.BlastJobStatus, error) {
	const op = "wait"

	def := DefaultWaitOptions()
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = def.InitialInterval
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = def.MaxInterval
	}
	if opts.MaxElapsed <= 0 {
		opts.MaxElapsed = def.MaxElapsed
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = opts.InitialInterval
	b.MaxInterval = opts.MaxInterval

	var last model.BlastJobStatus
	poll := func() (model.BlastJobStatus, error) {
		st, err := c.Status(ctx, jobID)
		if err != nil {
			if bridge.IsKind(err, bridge.KindTransport) && ctx.Err() == nil {
				return "", err
			}
			return "", backoff.Permanent(err)
		}
		last = st
		if !st.Done() {
			return st, errPending
		}
		return st, nil
	}

	_, err := backoff.Retry(ctx, poll,
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(opts.MaxElapsed),
	)
	if err != nil {
		if errors.Is(err, errPending) {
			return last, bridge.New(Name, op, bridge.KindTransport, fmt.Errorf("job %s still %s: %w", jobID, last, ErrTimeout))
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return last, bridge.New(Name, op, bridge.KindTransport, ctxErr)
		}
		return last, bridge.Wrap(Name, op, err)
	}

	if last != model.BlastFinished {
		return last, bridge.New(Name, op, bridge.KindRemote, fmt.Errorf("job %s ended with status %s", jobID, last))
	}
	return last, nil
}
