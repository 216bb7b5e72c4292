package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/s3"
	buildingModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/model"
	buildingRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/repository"
	categoryModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/model"
	categoryRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/model/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/base64"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/cache"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/failure"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Room
	subroomRepo  repository.Subroom
	buildingRepo buildingRepo.Building
	categoryRepo categoryRepo.Category
	txRunner     postgres.TxRunner
	cfg          *config.Config
	cache        cache.RedisCache
	s3           s3.S3
	otel         otel.Otel
}

func New(
	repo repository.Room,
	subroomRepo repository.Subroom,
	buildingRepo buildingRepo.Building,
	categoryRepo categoryRepo.Category,
	txRunner postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	s3Client s3.S3,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:         repo,
		subroomRepo:  subroomRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
		txRunner:     txRunner,
		cfg:          cfg,
		cache:        cache,
		s3:           s3Client,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.checkReferences(ctx, req.BuildingID, req.CategoryID); err != nil {
		return err
	}

	if len(req.Subrooms) > 0 && !req.IsQuadrant {
		return failure.BadRequestFromString("subrooms are only allowed on quadrant rooms") // nolint:wrapcheck
	}

	imageURL, uploadedObjectName, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return err
	}

	room := req.ToModel(user, imageURL)
	subrooms := req.ToSubroomModels(room.ID, user)

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, room); err != nil {
			return err
		}

		if len(subrooms) > 0 {
			if err := s.subroomRepo.InsertBulkTx(ctx, tx, subrooms); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName)
		}

		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	if room.IsQuadrant {
		subrooms, err := s.subroomRepo.GetAll(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldSubroomRoomID, model.SubroomTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get subrooms")

			return res, fmt.Errorf("failed to get subrooms: %w", err)
		}

		res.WithSubrooms(subrooms)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentRoom, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if currentRoom.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, req.BuildingID, req.CategoryID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Image != constant.Empty {
		imageURL, _, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			return err
		}

		updatedFields[model.FieldImage] = imageURL

		if currentRoom.Image != constant.Empty {
			objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, currentRoom.Image)
			if objectName != constant.Empty {
				_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName)
			}
		}
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, currentRoom.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	currentRoom, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if currentRoom.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.subroomRepo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldSubroomRoomID, model.SubroomTableName)); err != nil {
			return err
		}

		return s.repo.Delete(ctx, filter)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	if currentRoom.Image != constant.Empty {
		objectName := s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, currentRoom.Image)
		if objectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

// checkReferences validates that the referenced building and category rows
// exist. Empty ids are skipped so partial updates stay cheap.
func (s *serviceImpl) checkReferences(ctx context.Context, buildingID, categoryID string) error {
	if buildingID != constant.Empty {
		exists, err := s.buildingRepo.Exist(ctx, shared.FilterByID(buildingID, buildingModel.FieldID, buildingModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if building exists")

			return fmt.Errorf("failed to check if building exists: %w", err)
		}

		if !exists {
			return failure.UnprocessableEntity("building does not exist") // nolint:wrapcheck
		}
	}

	if categoryID != constant.Empty {
		exists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(categoryID, categoryModel.FieldID, categoryModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", err)
		}

		if !exists {
			return failure.UnprocessableEntity("category does not exist") // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, image string) (imageURL, objectName string, err error) {
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

	imageURL, err = s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName, contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return imageURL, objectName, nil
}
