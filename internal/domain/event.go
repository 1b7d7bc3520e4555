package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	EndpointSince = "since"
	EndpointRange = "range"
)

// QueryEvent records one served query for the audit stream.
type QueryEvent struct {
	ID        uuid.UUID  `json:"id"`
	Endpoint  string     `json:"endpoint"`
	Since     *time.Time `json:"since,omitempty"`
	From      *time.Time `json:"from,omitempty"`
	To        *time.Time `json:"to,omitempty"`
	Limit     int        `json:"limit"`
	Rows      int        `json:"rows"`
	RequestID string     `json:"request_id,omitempty"`
	At        time.Time  `json:"at"`
}

func NewSinceEvent(q SinceQuery, rows int, requestID string, at time.Time) QueryEvent {
	since := q.Since
	return QueryEvent{
		ID:        uuid.New(),
		Endpoint:  EndpointSince,
		Since:     &since,
		Limit:     q.Limit,
		Rows:      rows,
		RequestID: requestID,
		At:        at.UTC(),
	}
}

func NewRangeEvent(q RangeQuery, rows int, requestID string, at time.Time) QueryEvent {
	from, to := q.From, q.To
	return QueryEvent{
		ID:        uuid.New(),
		Endpoint:  EndpointRange,
		From:      &from,
		To:        &to,
		Limit:     q.Limit,
		Rows:      rows,
		RequestID: requestID,
		At:        at.UTC(),
	}
}
