package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

func TestFindVote_NotFoundAndFound(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	ctx := context.Background()

	if _, err := FindVote(ctx, db, "u1", "512", 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	created, err := CreateVote(ctx, db, "u1", "512", 10, domain.VoteLike)
	if err != nil {
		t.Fatalf("CreateVote: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("CreateVote did not fill id/timestamps: %+v", created)
	}

	got, err := FindVote(ctx, db, "u1", "512", 10)
	if err != nil {
		t.Fatalf("FindVote: %v", err)
	}
	if got.ID != created.ID || got.VoteType != domain.VoteLike {
		t.Fatalf("unexpected vote: %+v", got)
	}

	// Same print, other term: distinct key.
	if _, err := FindVote(ctx, db, "u1", "512", 9); !errors.Is(err, ErrNotFound) {
		t.Fatalf("term must be part of the key, got %v", err)
	}
}

func TestFindVote_Error_NoTable(t *testing.T) {
	db := newTestDB(t)
	if _, err := FindVote(context.Background(), db, "u1", "1", 10); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected raw DB error, got %v", err)
	}
}

func TestCreateVote_InvalidTypeRejectedByCheck(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	if _, err := CreateVote(context.Background(), db, "u1", "1", 10, domain.VoteType("meh")); err == nil {
		t.Fatalf("expected CHECK constraint failure")
	}
}

func TestUpdateVoteType(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	ctx := context.Background()

	v, err := CreateVote(ctx, db, "u1", "7", 10, domain.VoteLike)
	if err != nil {
		t.Fatalf("CreateVote: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if err := UpdateVoteType(ctx, db, v.ID, domain.VoteDislike); err != nil {
		t.Fatalf("UpdateVoteType: %v", err)
	}
	got, err := FindVote(ctx, db, "u1", "7", 10)
	if err != nil {
		t.Fatalf("FindVote: %v", err)
	}
	if got.VoteType != domain.VoteDislike {
		t.Fatalf("vote_type = %q; want dislike", got.VoteType)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("updated_at not bumped: created=%v updated=%v", got.CreatedAt, got.UpdatedAt)
	}

	var n int64
	db.Model(&domain.Vote{}).Count(&n)
	if n != 1 {
		t.Fatalf("update must not insert, rows=%d", n)
	}

	if err := UpdateVoteType(ctx, db, "missing", domain.VoteLike); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteVotes_RemovesAllRowsOfKey(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	ctx := context.Background()

	// Two rows for the same key simulate the lost-update race.
	for i := 0; i < 2; i++ {
		if _, err := CreateVote(ctx, db, "u1", "9", 10, domain.VoteLike); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if _, err := CreateVote(ctx, db, "u2", "9", 10, domain.VoteLike); err != nil {
		t.Fatalf("seed other user: %v", err)
	}

	n, err := DeleteVotes(ctx, db, "u1", "9", 10)
	if err != nil {
		t.Fatalf("DeleteVotes: %v", err)
	}
	if n != 2 {
		t.Fatalf("deleted %d rows; want 2", n)
	}

	n, err = DeleteVotes(ctx, db, "u1", "9", 10)
	if err != nil || n != 0 {
		t.Fatalf("second delete should be a no-op, got n=%d err=%v", n, err)
	}

	var left int64
	db.Model(&domain.Vote{}).Count(&left)
	if left != 1 {
		t.Fatalf("other user's vote must survive, rows=%d", left)
	}
}

func TestUserVotesFor(t *testing.T) {
	db := newTestDB(t, &domain.Vote{})
	ctx := context.Background()

	seed := []struct {
		user, number string
		term         int
		vt           domain.VoteType
	}{
		{"u1", "1", 10, domain.VoteLike},
		{"u1", "2", 10, domain.VoteDislike},
		{"u1", "3", 9, domain.VoteLike},
		{"u2", "4", 10, domain.VoteLike},
	}
	for _, s := range seed {
		if _, err := CreateVote(ctx, db, s.user, s.number, s.term, s.vt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := UserVotesFor(ctx, db, "u1", []string{"1", "2", "3", "4", "5"}, 10)
	if err != nil {
		t.Fatalf("UserVotesFor: %v", err)
	}
	if len(got) != 2 || got["1"] != domain.VoteLike || got["2"] != domain.VoteDislike {
		t.Fatalf("unexpected votes: %#v", got)
	}

	empty, err := UserVotesFor(ctx, db, "u1", nil, 10)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty input should give empty map, got %v err=%v", empty, err)
	}
}

func TestUserVotesFor_Error_NoTable(t *testing.T) {
	db := newTestDB(t)
	if _, err := UserVotesFor(context.Background(), db, "u1", []string{"1"}, 10); err == nil {
		t.Fatalf("expected error due to missing votes table")
	}
}
