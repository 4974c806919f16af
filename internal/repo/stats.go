// Package repo implements the data persistence layer for votes and the
// key-value store. This file provides the aggregate queries behind voting
// statistics. Each function is context-aware and safe to call from services.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
)

type voteCount struct {
	PrintNumber string
	VoteType    domain.VoteType
	N           int64
}

// VoteStats counts likes and dislikes of a single print.
func VoteStats(ctx context.Context, db *gorm.DB, number string, term int) (domain.VotingStats, error) {
	m, err := VoteStatsFor(ctx, db, []string{number}, term)
	if err != nil {
		return domain.VotingStats{}, err
	}
	return m[number], nil
}

// VoteStatsFor counts likes and dislikes of many prints with one grouped
// query. Every requested number gets an entry; prints without votes are
// zeroed.
func VoteStatsFor(ctx context.Context, db *gorm.DB, numbers []string, term int) (map[string]domain.VotingStats, error) {
	out := make(map[string]domain.VotingStats, len(numbers))
	if len(numbers) == 0 {
		return out, nil
	}
	for _, n := range numbers {
		out[n] = domain.VotingStats{}
	}

	var rows []voteCount
	err := db.WithContext(ctx).
		Model(&domain.Vote{}).
		Select("print_number, vote_type, COUNT(*) AS n").
		Where("term = ? AND print_number IN ?", term, numbers).
		Group("print_number, vote_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		s := out[r.PrintNumber]
		switch r.VoteType {
		case domain.VoteLike:
			s.Likes += r.N
		case domain.VoteDislike:
			s.Dislikes += r.N
		}
		s.Total = s.Likes + s.Dislikes
		out[r.PrintNumber] = s
	}
	return out, nil
}
