package repo

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

func seedVote(t *testing.T, db *gorm.DB, user, number string, term int, vt domain.VoteType) {
	t.Helper()
	if _, err := CreateVote(context.Background(), db, user, number, term, vt); err != nil {
		t.Fatalf("seed vote %s/%s: %v", user, number, err)
	}
}

func TestVoteStats_ZeroRows(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	s, err := VoteStats(context.Background(), db, "512", 10)
	if err != nil {
		t.Fatalf("VoteStats error: %v", err)
	}
	if s != (domain.VotingStats{}) {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}

func TestVoteStats_CountsByType(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	seedVote(t, db, "u1", "512", 10, domain.VoteLike)
	seedVote(t, db, "u2", "512", 10, domain.VoteLike)
	seedVote(t, db, "u3", "512", 10, domain.VoteDislike)
	seedVote(t, db, "u4", "512", 9, domain.VoteDislike) // other term
	seedVote(t, db, "u5", "513", 10, domain.VoteDislike)

	s, err := VoteStats(context.Background(), db, "512", 10)
	if err != nil {
		t.Fatalf("VoteStats error: %v", err)
	}
	want := domain.VotingStats{Likes: 2, Dislikes: 1, Total: 3}
	if s != want {
		t.Fatalf("stats = %+v; want %+v", s, want)
	}
}

func TestVoteStatsFor_EntryForEveryRequestedNumber(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	seedVote(t, db, "u1", "1", 10, domain.VoteLike)
	seedVote(t, db, "u2", "1", 10, domain.VoteDislike)
	seedVote(t, db, "u1", "2", 10, domain.VoteDislike)

	got, err := VoteStatsFor(context.Background(), db, []string{"1", "2", "3"}, 10)
	if err != nil {
		t.Fatalf("VoteStatsFor error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %#v", got)
	}
	if got["1"] != (domain.VotingStats{Likes: 1, Dislikes: 1, Total: 2}) {
		t.Fatalf("stats[1] = %+v", got["1"])
	}
	if got["2"] != (domain.VotingStats{Dislikes: 1, Total: 1}) {
		t.Fatalf("stats[2] = %+v", got["2"])
	}
	if got["3"] != (domain.VotingStats{}) {
		t.Fatalf("stats[3] should be zeroed, got %+v", got["3"])
	}
}

func TestVoteStatsFor_EmptyInput(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	got, err := VoteStatsFor(context.Background(), db, nil, 10)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty map without querying, got %v err=%v", got, err)
	}
}

func TestVoteStats_Error_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, err := VoteStats(context.Background(), db, "1", 10); err == nil {
		t.Fatalf("expected error due to missing votes table")
	}
}
