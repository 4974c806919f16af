// Package services – VoteService
//
// This file implements VoteService, which records likes and dislikes on
// prints and aggregates them. A user has at most one vote per print and
// term: submitting again changes the existing vote in place.
//
// The lookup and the following insert or update are separate statements
// without a transaction, and the votes table has no unique key. Two racing
// first submissions from one user can therefore leave two rows. Stats count
// both until the user removes the vote, which deletes every row of the key.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/events"
	"github.com/tbourn/sejm-prints-backend/internal/observability"
	"github.com/tbourn/sejm-prints-backend/internal/repo"
)

// MaxBatchNumbers caps the prints named in one batch query.
const MaxBatchNumbers = 100

// VoteResult is returned by vote mutations.
type VoteResult struct {
	Action   string             `json:"action"`
	UserVote *domain.VoteType   `json:"userVote"`
	Stats    domain.VotingStats `json:"stats"`
}

// VoteSummary is a print's stats plus the caller's own vote, if any.
type VoteSummary struct {
	Stats    domain.VotingStats `json:"stats"`
	UserVote *domain.VoteType   `json:"userVote"`
}

// VoteService implements voting use-cases for one parliamentary term.
type VoteService struct {
	DB        *gorm.DB
	Term      int
	Publisher VotePublisher
}

// NewVoteService returns a VoteService. A nil publisher discards events.
func NewVoteService(db *gorm.DB, term int, pub VotePublisher) *VoteService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &VoteService{DB: db, Term: term, Publisher: pub}
}

// Submit records voteType for userID on the print. An existing vote is
// updated in place (action "updated"); otherwise a row is inserted (action
// "created"). Stats are recomputed after the write.
func (s *VoteService) Submit(ctx context.Context, userID, number string, voteType domain.VoteType) (*VoteResult, error) {
	tr := otel.Tracer("services/VoteService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(
			attribute.String("print.number", number),
			attribute.String("vote.type", string(voteType)),
		),
	)
	defer span.End()

	number, err := validateVoteKey(userID, number)
	if err != nil {
		return nil, err
	}
	if !voteType.Valid() {
		return nil, ErrInvalidVote
	}

	action := events.ActionUpdated
	existing, err := repo.FindVote(ctx, s.DB, userID, number, s.Term)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		if _, err := repo.CreateVote(ctx, s.DB, userID, number, s.Term, voteType); err != nil {
			return nil, err
		}
		action = events.ActionCreated
	case err != nil:
		return nil, err
	default:
		if err := repo.UpdateVoteType(ctx, s.DB, existing.ID, voteType); err != nil {
			return nil, err
		}
	}

	stats, err := repo.VoteStats(ctx, s.DB, number, s.Term)
	if err != nil {
		return nil, err
	}

	vt := voteType
	res := &VoteResult{Action: action, UserVote: &vt, Stats: stats}
	s.afterMutation(ctx, number, res)
	return res, nil
}

// Remove deletes the user's vote on the print. Removing a vote that does
// not exist is a successful no-op.
func (s *VoteService) Remove(ctx context.Context, userID, number string) (*VoteResult, error) {
	tr := otel.Tracer("services/VoteService")
	ctx, span := tr.Start(ctx, "Remove",
		trace.WithAttributes(attribute.String("print.number", number)),
	)
	defer span.End()

	number, err := validateVoteKey(userID, number)
	if err != nil {
		return nil, err
	}

	deleted, err := repo.DeleteVotes(ctx, s.DB, userID, number, s.Term)
	if err != nil {
		return nil, err
	}
	stats, err := repo.VoteStats(ctx, s.DB, number, s.Term)
	if err != nil {
		return nil, err
	}

	res := &VoteResult{Action: events.ActionRemoved, UserVote: nil, Stats: stats}
	if deleted > 0 {
		s.afterMutation(ctx, number, res)
	}
	return res, nil
}

// Stats returns the print's like/dislike counts.
func (s *VoteService) Stats(ctx context.Context, number string) (domain.VotingStats, error) {
	number = strings.TrimSpace(number)
	if !ValidPrintNumber(number) {
		return domain.VotingStats{}, ErrInvalidPrintNumber
	}
	return repo.VoteStats(ctx, s.DB, number, s.Term)
}

// UserVote returns the user's vote on the print, or nil.
func (s *VoteService) UserVote(ctx context.Context, userID, number string) (*domain.VoteType, error) {
	number, err := validateVoteKey(userID, number)
	if err != nil {
		return nil, err
	}
	v, err := repo.FindVote(ctx, s.DB, userID, number, s.Term)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	vt := v.VoteType
	return &vt, nil
}

// Summary combines Stats and, when userID is set, UserVote.
func (s *VoteService) Summary(ctx context.Context, userID, number string) (*VoteSummary, error) {
	stats, err := s.Stats(ctx, number)
	if err != nil {
		return nil, err
	}
	out := &VoteSummary{Stats: stats}
	if strings.TrimSpace(userID) == "" {
		return out, nil
	}
	if out.UserVote, err = s.UserVote(ctx, userID, number); err != nil {
		return nil, err
	}
	return out, nil
}

// MultipleStats returns stats for every requested print using one grouped
// query. Prints without votes get zeroed stats.
func (s *VoteService) MultipleStats(ctx context.Context, numbers []string) (map[string]domain.VotingStats, error) {
	tr := otel.Tracer("services/VoteService")
	ctx, span := tr.Start(ctx, "MultipleStats",
		trace.WithAttributes(attribute.Int("numbers", len(numbers))),
	)
	defer span.End()

	clean, err := cleanNumbers(numbers)
	if err != nil {
		return nil, err
	}
	return repo.VoteStatsFor(ctx, s.DB, clean, s.Term)
}

// MultipleUserVotes returns the user's votes on the requested prints using
// one query. Prints the user has not voted on are absent.
func (s *VoteService) MultipleUserVotes(ctx context.Context, userID string, numbers []string) (map[string]domain.VoteType, error) {
	tr := otel.Tracer("services/VoteService")
	ctx, span := tr.Start(ctx, "MultipleUserVotes",
		trace.WithAttributes(attribute.Int("numbers", len(numbers))),
	)
	defer span.End()

	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	clean, err := cleanNumbers(numbers)
	if err != nil {
		return nil, err
	}
	return repo.UserVotesFor(ctx, s.DB, userID, clean, s.Term)
}

// afterMutation counts the action and publishes it. Publishing is best
// effort: the vote is already stored.
func (s *VoteService) afterMutation(ctx context.Context, number string, res *VoteResult) {
	observability.ObserveVote(res.Action)
	ev := events.VoteEvent{
		Action:      res.Action,
		PrintNumber: number,
		Term:        s.Term,
		VoteType:    res.UserVote,
		Stats:       res.Stats,
	}
	if err := s.Publisher.PublishVote(ctx, ev); err != nil {
		log.Warn().Err(err).
			Str("component", "votes").
			Str("print", number).
			Str("action", res.Action).
			Msg("publish vote event failed")
	}
}

func validateVoteKey(userID, number string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", ErrMissingUser
	}
	number = strings.TrimSpace(number)
	if !ValidPrintNumber(number) {
		return "", ErrInvalidPrintNumber
	}
	return number, nil
}

// cleanNumbers trims, validates and de-duplicates a batch of print numbers,
// keeping first-seen order.
func cleanNumbers(numbers []string) ([]string, error) {
	seen := make(map[string]struct{}, len(numbers))
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if !ValidPrintNumber(n) {
			return nil, ErrInvalidPrintNumber
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) > MaxBatchNumbers {
		return nil, ErrTooManyNumbers
	}
	return out, nil
}
