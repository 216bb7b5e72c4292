package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/s3"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/model/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/base64"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/cache"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/failure"
)

const (
	cacheGetBuilding    = "building:get"
	cacheGetAllBuilding = "building:gets"
	cacheCountBuilding  = "building:count"
)

type Building interface {
	Create(ctx context.Context, req dto.CreateBuildingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBuildingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BuildingResponse, error)
	Update(ctx context.Context, req dto.UpdateBuildingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Building
	cfg   *config.Config
	cache cache.RedisCache
	s3    s3.S3
	otel  otel.Otel
}

func New(repo repository.Building, cfg *config.Config, cache cache.RedisCache, s3Client s3.S3, otel otel.Otel) Building {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3Client,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBuildingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL, uploadedObjectName, err := uploadImage(ctx, s.s3, s.cfg, req.Image)
	if err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		log.Error().Err(err).Msg("failed to create building")

		return fmt.Errorf("failed to create building: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBuilding)
		shared.InvalidateCaches(c, s.cache, cacheCountBuilding)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBuildingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBuilding, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for buildings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buildings")

		return res, fmt.Errorf("failed to count buildings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get buildings")

		return res, fmt.Errorf("failed to get buildings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save buildings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBuilding, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count buildings")

		return res, fmt.Errorf("failed to count buildings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save building count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BuildingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBuilding, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for building")

		return res, nil
	}

	building, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return res, fmt.Errorf("failed to get building: %w", err)
	}

	if building.ID == constant.Empty {
		return res, failure.NotFound("building not found") // nolint:wrapcheck
	}

	res.FromModel(building)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save building to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBuildingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBuildingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return fmt.Errorf("failed to get building: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("building not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Image != constant.Empty {
		imageURL, _, err := uploadImage(ctx, s.s3, s.cfg, req.Image)
		if err != nil {
			return err
		}

		updatedFields[model.FieldImage] = imageURL

		if current.Image != constant.Empty {
			objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, current.Image)
			if objectName != constant.Empty {
				_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName)
			}
		}
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update building")

		return fmt.Errorf("failed to update building: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBuilding, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete building from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBuilding)
		shared.InvalidateCaches(c, s.cache, cacheCountBuilding)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get building")

		return fmt.Errorf("failed to get building: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("building not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete building")

		return fmt.Errorf("failed to delete building: %w", err)
	}

	if current.Image != constant.Empty {
		objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, current.Image)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBuilding, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete building from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBuilding)
		shared.InvalidateCaches(c, s.cache, cacheCountBuilding)
	}()

	return nil
}

// uploadImage stores a base64 data URI in object storage and returns the
// public URL and the stored object name. An empty image is not an error.
func uploadImage(ctx context.Context, s3Client s3.S3, cfg *config.Config, image string) (imageURL, objectName string, err error) {
	if image == constant.Empty {
		return constant.Empty, constant.Empty, nil
	}

	fileData, err := base64.Decode(image)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode image")

		return constant.Empty, constant.Empty, failure.BadRequestFromString("invalid image encoding") // nolint:wrapcheck
	}

	contentType := base64.GetContentType(image)

	objectName = uuid.NewString()

	imageURL, err = s3Client.UploadFileBytes(ctx, cfg.External.S3.BucketName, model.EntityName, objectName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return imageURL, objectName, nil
}
