// Package events publishes vote changes so other processes (a realtime
// fan-out, analytics) can react without polling the database.
package events

import (
	"context"
	"time"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

// Vote actions carried by VoteEvent.Action.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionRemoved = "removed"
)

// VoteEvent describes one vote mutation and the print's stats after it.
type VoteEvent struct {
	Action      string             `json:"action"`
	PrintNumber string             `json:"printNumber"`
	Term        int                `json:"term"`
	VoteType    *domain.VoteType   `json:"voteType"`
	Stats       domain.VotingStats `json:"stats"`
	Timestamp   time.Time          `json:"timestamp"`
}

// Publisher delivers vote events.
type Publisher interface {
	PublishVote(ctx context.Context, ev VoteEvent) error
	Close() error
}

// Noop discards events. It is used when messaging is disabled.
type Noop struct{}

func (Noop) PublishVote(context.Context, VoteEvent) error { return nil }
func (Noop) Close() error                                 { return nil }
