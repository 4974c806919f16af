// Package repo implements the data persistence layer for votes and the
// key-value store. This file provides repository functions for the Vote model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving the upsert decision to the services package.
//
// Error semantics:
//   - FindVote returns ErrNotFound when the user has no vote on the print.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
//
// Functions:
//
//   - FindVote(ctx, db, userID, number, term) -> *domain.Vote, error
//   - CreateVote(ctx, db, userID, number, term, voteType) -> *domain.Vote, error
//   - UpdateVoteType(ctx, db, id, voteType) -> error
//   - DeleteVotes(ctx, db, userID, number, term) -> (int64, error)
//   - UserVotesFor(ctx, db, userID, numbers, term) -> map[string]domain.VoteType, error
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

// FindVote returns the user's vote on a print, or ErrNotFound. When
// duplicates exist the oldest row is returned.
func FindVote(ctx context.Context, db *gorm.DB, userID, number string, term int) (*domain.Vote, error) {
	var v domain.Vote
	err := db.WithContext(ctx).
		Where("user_id = ? AND print_number = ? AND term = ?", userID, number, term).
		Order("created_at ASC").
		First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateVote inserts a new vote row with a UUID primary key.
func CreateVote(ctx context.Context, db *gorm.DB, userID, number string, term int, voteType domain.VoteType) (*domain.Vote, error) {
	now := time.Now().UTC()
	v := &domain.Vote{
		ID:          uuid.NewString(),
		UserID:      userID,
		PrintNumber: number,
		Term:        term,
		VoteType:    voteType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.WithContext(ctx).Create(v).Error; err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVoteType changes the type of an existing vote and bumps UpdatedAt.
// Returns ErrNotFound if no row has the given id.
func UpdateVoteType(ctx context.Context, db *gorm.DB, id string, voteType domain.VoteType) error {
	res := db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"vote_type":  voteType,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteVotes removes every vote of the user on the print and reports how
// many rows were deleted. Deleting nothing is not an error.
func DeleteVotes(ctx context.Context, db *gorm.DB, userID, number string, term int) (int64, error) {
	res := db.WithContext(ctx).
		Where("user_id = ? AND print_number = ? AND term = ?", userID, number, term).
		Delete(&domain.Vote{})
	return res.RowsAffected, res.Error
}

// UserVotesFor returns the user's votes on the given prints in one query.
// Prints without a vote are absent from the map.
func UserVotesFor(ctx context.Context, db *gorm.DB, userID string, numbers []string, term int) (map[string]domain.VoteType, error) {
	out := make(map[string]domain.VoteType, len(numbers))
	if len(numbers) == 0 {
		return out, nil
	}
	var rows []domain.Vote
	err := db.WithContext(ctx).
		Select("print_number", "vote_type", "created_at").
		Where("user_id = ? AND term = ? AND print_number IN ?", userID, term, numbers).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		// Keep the oldest row per print, matching FindVote.
		if _, seen := out[r.PrintNumber]; !seen {
			out[r.PrintNumber] = r.VoteType
		}
	}
	return out, nil
}
