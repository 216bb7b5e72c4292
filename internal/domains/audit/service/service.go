package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/model/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
)

type Audit interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditLogsResponse, error)
}

type serviceImpl struct {
	repo repository.Audit
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Audit, cfg *config.Config, otel otel.Otel) Audit {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// GetAll lists audit entries. Audit reads are admin-only and rare, so they
// skip the cache and always hit the store.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}
