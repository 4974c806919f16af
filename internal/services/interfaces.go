package services

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/tbourn/sejm-prints-backend/internal/domain"
	"github.com/tbourn/sejm-prints-backend/internal/events"
)

// PrintSource is the upstream provider of raw prints. *sejm.Client
// implements it.
type PrintSource interface {
	Term() int
	ListPrints(ctx context.Context) ([]domain.Print, error)
	GetPrint(ctx context.Context, number string) (*domain.Print, error)
	PDFURL(number string) string
	ProcessURL(processNumber string) string
}

// VotePublisher receives vote changes. events.Publisher implements it.
type VotePublisher interface {
	PublishVote(ctx context.Context, ev events.VoteEvent) error
}
