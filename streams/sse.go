package streams

import (
	"context"
	"errors"
	"io"

	"github.com/tmaxmax/go-sse"
)

// StreamEvent is one decoded Server-Sent Event, backing the reserved
// streaming entrypoint (spec §9).
type StreamEvent struct {
	LastEventID string
	Type        string
	Data        []byte
}

// NewSSEDecoder wraps an SSE body as a Stream of StreamEvent, for the
// reserved (stub) streaming entrypoint to decode into once a provider
// adapter implements streaming.
func NewSSEDecoder(ctx context.Context, rc io.ReadCloser) Stream[*StreamEvent] {
	return &sseDecoder{ctx: ctx, sseStream: sse.NewStream(rc)}
}

// sseDecoder implements Stream[*StreamEvent] over a go-sse Stream.
//
//nolint:containedctx
type sseDecoder struct {
	ctx       context.Context
	sseStream *sse.Stream
	current   *StreamEvent
	err       error
	closed    bool
}

func (s *sseDecoder) Next() bool {
	if s.err != nil || s.closed {
		return false
	}

	select {
	case <-s.ctx.Done():
		s.err = s.ctx.Err()
		_ = s.Close()

		return false
	default:
	}

	event, err := s.sseStream.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			_ = s.Close()
			return false
		}

		s.err = err
		_ = s.Close()

		return false
	}

	s.current = &StreamEvent{
		LastEventID: event.LastEventID,
		Type:        event.Type,
		Data:        []byte(event.Data),
	}

	return true
}

func (s *sseDecoder) Current() *StreamEvent { return s.current }

func (s *sseDecoder) Err() error { return s.err }

func (s *sseDecoder) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	return s.sseStream.Close()
}
