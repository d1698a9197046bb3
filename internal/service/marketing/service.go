package marketing

import (
	"context"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type campaignRepo interface {
	List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	Update(ctx context.Context, id string, params domain.CampaignUpdateParams) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error
}

type saleRepo interface {
	List(ctx context.Context, filter domain.SaleFilter) ([]domain.BookSale, error)
	Create(ctx context.Context, s domain.BookSale) (*domain.BookSale, error)
}

// Service manages marketing campaigns and book sales records.
type Service struct {
	campaigns campaignRepo
	sales     saleRepo
	log       *slog.Logger
}

// NewService creates a new marketing service.
func NewService(log *slog.Logger, campaigns campaignRepo, sales saleRepo) *Service {
	return &Service{
		campaigns: campaigns,
		sales:     sales,
		log:       log.With("service", "marketing"),
	}
}
