// Package domain defines the persistence models for votes and the key-value
// store, and the read models for legislative prints. Vote and KeyValue are
// mapped with GORM; print types are plain values produced by the Sejm client
// and the classifier.
package domain

import (
	"time"
)

// VoteType is a user's reaction to a print.
type VoteType string

const (
	VoteLike    VoteType = "like"
	VoteDislike VoteType = "dislike"
)

// Valid reports whether v is one of the supported vote types.
func (v VoteType) Valid() bool {
	return v == VoteLike || v == VoteDislike
}

// Vote is a single user's vote on a print within a parliamentary term.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - UserID: opaque user or anonymous-device token.
//   - PrintNumber / Term: the voted print; indexed together for aggregation.
//   - VoteType: "like" or "dislike" (enforced by DB constraint).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//
// At most one row should exist per (user_id, print_number, term). The key is
// not backed by a unique index: the service looks the row up and then updates
// or inserts it, so two racing submissions from one user can still produce a
// duplicate. Removing a vote deletes every row of the key.
type Vote struct {
	ID          string    `json:"id"           gorm:"type:char(36);primaryKey"`
	UserID      string    `json:"user_id"      gorm:"type:varchar(64);not null;index:idx_vote_user_print,priority:1"`
	PrintNumber string    `json:"print_number" gorm:"type:varchar(32);not null;index:idx_vote_user_print,priority:2;index:idx_vote_print,priority:1"`
	Term        int       `json:"term"         gorm:"not null;index:idx_vote_user_print,priority:3;index:idx_vote_print,priority:2"`
	VoteType    VoteType  `json:"vote_type"    gorm:"type:varchar(16);not null;check:vote_type IN ('like','dislike')"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Vote.
func (Vote) TableName() string { return "votes" }

// VotingStats aggregates the votes of a single print.
type VotingStats struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	Total    int64 `json:"total"`
}

// KeyValue is a row of the generic key-value store used for anonymous
// identities and other small pieces of persisted client state.
type KeyValue struct {
	Key       string `gorm:"type:varchar(191);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name for KeyValue.
func (KeyValue) TableName() string { return "kv_store" }
