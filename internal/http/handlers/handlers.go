package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/http/middleware"
	"github.com/tbourn/sejm-prints-backend/internal/services"
)

// PrintService serves enriched legislative prints.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type PrintService interface {
	FetchPrints(ctx context.Context, q services.PrintQuery) (*domain.PrintPage, error)
	FetchPrintDetails(ctx context.Context, number string) (*domain.PrintDetails, error)
}

// VoteService records and aggregates per-print votes.
type VoteService interface {
	Submit(ctx context.Context, userID, number string, voteType domain.VoteType) (*services.VoteResult, error)
	Remove(ctx context.Context, userID, number string) (*services.VoteResult, error)
	Summary(ctx context.Context, userID, number string) (*services.VoteSummary, error)
	MultipleStats(ctx context.Context, numbers []string) (map[string]domain.VotingStats, error)
	MultipleUserVotes(ctx context.Context, userID string, numbers []string) (map[string]domain.VoteType, error)
}

// Handlers groups the HTTP endpoints for prints and votes.
type Handlers struct {
	prints PrintService
	votes  VoteService
}

// New constructs a Handlers bound to the given services.
func New(prints PrintService, votes VoteService) *Handlers {
	return &Handlers{prints: prints, votes: votes}
}

// userID returns the identity resolved by middleware.Identity, or "".
func userID(c *gin.Context) string { return middleware.UserID(c) }
