package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/kafka"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
	auditModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/model"
	auditRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/schedule"
	buildingModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/model"
	buildingRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/repository"
	categoryModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/model"
	categoryRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/repository"
	roomModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/model"
	roomRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/repository"
	userModel "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/user/model"
	userRepo "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/user/repository"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/cache"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/failure"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	EventBookingCreated       = "booking.created"
	EventBookingUpdated       = "booking.updated"
	EventBookingDeleted       = "booking.deleted"
	EventBookingStatusChanged = "booking.status_changed"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) ([]dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, req dto.ChangeStatusRequest, id string) error
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	buildingRepo buildingRepo.Building
	categoryRepo categoryRepo.Category
	userRepo     userRepo.User
	auditRepo    auditRepo.Audit
	txRunner     postgres.TxRunner
	cfg          *config.Config
	cache        cache.RedisCache
	kafkaClient  kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	buildingRepo buildingRepo.Building,
	categoryRepo categoryRepo.Category,
	userRepo userRepo.User,
	auditRepo auditRepo.Audit,
	txRunner postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
		txRunner:     txRunner,
		cfg:          cfg,
		cache:        cache,
		kafkaClient:  kafkaClient,
		otel:         otel,
	}
}

// Create books a room for a single day, or for every day of the recurrence
// range when the request is recurring. The room lock, the conflict check
// against confirmed bookings, and the inserts all run inside one transaction,
// so a recurring series is written entirely or not at all. It returns one
// response per row written, in date order.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, candidate, err := s.normalizeSchedule(&req)
	if err != nil {
		return res, err
	}

	days := []string{date}

	if req.IsRecurring {
		recurrenceEnd, err := schedule.NormalizeDate(req.RecurrenceEndDate)
		if err != nil {
			return res, failure.BadRequestFromString("invalid recurrence end date") // nolint:wrapcheck
		}

		dateRange, err := schedule.NewDateRange(date, recurrenceEnd)
		if err != nil {
			return res, failure.BadRequestFromString("recurrence end date must not precede the booking date") // nolint:wrapcheck
		}

		if maxDays := s.cfg.App.Booking.MaxRecurrenceDays; maxDays > 0 && dateRange.Len() > maxDays {
			return res, failure.BadRequestFromString(fmt.Sprintf("recurrence range spans %d days, the maximum is %d", dateRange.Len(), maxDays)) // nolint:wrapcheck
		}

		req.RecurrenceEndDate = recurrenceEnd

		days = days[:0]
		for day := range dateRange.Days() {
			days = append(days, day)
		}
	}

	if err = s.checkReferences(ctx, req.RoomID, req.BuildingID, req.CategoryID, req.UserID); err != nil {
		return res, err
	}

	var groupID *string
	if req.IsRecurring {
		gid := uuid.NewString()
		groupID = &gid
	}

	bookings := make([]model.Booking, len(days))
	for i, day := range days {
		bookings[i] = req.ToModel(user, day, groupID)
	}

	buffer := s.cfg.App.Booking.BufferMinutes

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.roomRepo.LockTx(ctx, tx, req.RoomID); err != nil {
			return err
		}

		for _, day := range days {
			existing, err := s.repo.FindConfirmedForRoomDateTx(ctx, tx, req.RoomID, day, constant.Empty)
			if err != nil {
				return err
			}

			if conflict := findConflict(candidate, buffer, existing); conflict != nil {
				return conflictFailure(*conflict)
			}
		}

		if len(bookings) == 1 {
			if err := s.repo.InsertTx(ctx, tx, bookings[0]); err != nil {
				return err
			}
		} else if err := s.repo.InsertBulkTx(ctx, tx, bookings); err != nil {
			return err
		}

		for _, booking := range bookings {
			if err := s.auditRepo.InsertTx(ctx, tx, newAuditLog(booking.ID, auditModel.ActionCreate, constant.Empty, marshalValue(booking), user)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to create booking")

			return res, fmt.Errorf("failed to create booking: %w", err)
		}

		return res, err
	}

	s.publishEvents(ctx, EventBookingCreated, user, bookings...)
	s.invalidateListCaches(ctx)

	res = make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update edits a booking's details. When the room, date, or times change, the
// conflict check runs again under the room lock with the booking's own rows
// excluded. An update that leaves the schedule untouched never consults the
// conflict detector.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if current.Status == model.StatusDeclined || current.Status == model.StatusCancelled {
		return failure.Conflict(fmt.Sprintf("cannot update a %s booking", current.Status)) // nolint:wrapcheck
	}

	if err = s.normalizeUpdate(&req); err != nil {
		return err
	}

	if err = s.checkReferences(ctx, req.RoomID, constant.Empty, constant.Empty, nil); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if !req.ChangesInterval() {
		if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		if err := s.auditRepo.Insert(ctx, newAuditLog(id, auditModel.ActionUpdate, marshalValue(current), marshalValue(updatedFields), user)); err != nil {
			log.Error().Err(err).Msg("failed to write audit log")

			return fmt.Errorf("failed to write audit log: %w", err)
		}

		s.publishEvents(ctx, EventBookingUpdated, user, current)
		s.invalidateBookingCaches(ctx, id)

		return nil
	}

	roomID := coalesce(req.RoomID, current.RoomID)
	date := coalesce(req.Date, current.Date)
	startTime := coalesce(req.StartTime, current.StartTime)
	endTime := coalesce(req.EndTime, current.EndTime)

	candidate, err := schedule.NewInterval(startTime, endTime)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	buffer := s.cfg.App.Booking.BufferMinutes

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.roomRepo.LockTx(ctx, tx, roomID); err != nil {
			return err
		}

		existing, err := s.repo.FindConfirmedForRoomDateTx(ctx, tx, roomID, date, current.ID)
		if err != nil {
			return err
		}

		if conflict := findConflict(candidate, buffer, existing); conflict != nil {
			return conflictFailure(*conflict)
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		return s.auditRepo.InsertTx(ctx, tx, newAuditLog(id, auditModel.ActionUpdate, marshalValue(current), marshalValue(updatedFields), user))
	})
	if err != nil {
		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		return err
	}

	s.publishEvents(ctx, EventBookingUpdated, user, current)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err := s.auditRepo.Insert(ctx, newAuditLog(id, auditModel.ActionDelete, marshalValue(current), constant.Empty, user)); err != nil {
		log.Error().Err(err).Msg("failed to write audit log")

		return fmt.Errorf("failed to write audit log: %w", err)
	}

	s.publishEvents(ctx, EventBookingDeleted, user, current)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

// ChangeStatus moves a booking through the status machine. Confirming re-runs
// the conflict check under the room lock, so two pending bookings on the same
// slot can never both end up confirmed.
func (s *serviceImpl) ChangeStatus(ctx context.Context, req dto.ChangeStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Status == model.StatusDeclined && req.Reason == constant.Empty {
		return failure.BadRequestFromString("a reason is required to decline a booking") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	buffer := s.cfg.App.Booking.BufferMinutes

	var current model.Booking

	err = s.txRunner.WithTx(ctx, func(tx *sqlx.Tx) error {
		var err error

		current, err = s.repo.GetTx(ctx, tx, filter)
		if err != nil {
			return err
		}

		if current.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if !model.CanTransition(current.Status, req.Status) {
			return failure.Conflict(fmt.Sprintf("cannot change booking status from %s to %s", current.Status, req.Status)) // nolint:wrapcheck
		}

		if req.Status == model.StatusConfirmed {
			if err := s.roomRepo.LockTx(ctx, tx, current.RoomID); err != nil {
				return err
			}

			candidate, err := schedule.NewInterval(current.StartTime, current.EndTime)
			if err != nil {
				return err
			}

			existing, err := s.repo.FindConfirmedForRoomDateTx(ctx, tx, current.RoomID, current.Date, current.ID)
			if err != nil {
				return err
			}

			if conflict := findConflict(candidate, buffer, existing); conflict != nil {
				return conflictFailure(*conflict)
			}
		}

		updatedFields := map[string]any{
			model.FieldStatus:        req.Status,
			model.FieldChangedBy:     user,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if req.Status == model.StatusDeclined {
			updatedFields[model.FieldDeclineReason] = req.Reason
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return err
		}

		return s.auditRepo.InsertTx(ctx, tx, newAuditLog(id, auditModel.ActionStatusChange, current.Status, req.Status, user))
	})
	if err != nil {
		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to change booking status")

			return fmt.Errorf("failed to change booking status: %w", err)
		}

		return err
	}

	current.Status = req.Status

	s.publishEvents(ctx, EventBookingStatusChanged, user, current)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

// CheckAvailability answers whether the slot could be booked right now. It is
// a plain read with no lock, so a positive answer can still lose the race to a
// concurrent booking.
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	date, err := schedule.NormalizeDate(req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date format") // nolint:wrapcheck
	}

	candidate, err := schedule.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if err = s.checkReferences(ctx, req.RoomID, constant.Empty, constant.Empty, nil); err != nil {
		return res, err
	}

	existing, err := s.repo.FindConfirmedForRoomDate(ctx, req.RoomID, date, constant.Empty)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if conflict := findConflict(candidate, s.cfg.App.Booking.BufferMinutes, existing); conflict != nil {
		res.Available = false
		res.Message = fmt.Sprintf("room is booked from %s to %s", conflict.StartTime, conflict.EndTime)

		return res, nil
	}

	res.Available = true
	res.Message = "room is available"

	return res, nil
}

// normalizeSchedule rewrites the request's date and time fields into their
// canonical stored forms and returns the booking interval.
func (s *serviceImpl) normalizeSchedule(req *dto.CreateBookingRequest) (string, schedule.Interval, error) {
	date, err := schedule.NormalizeDate(req.Date)
	if err != nil {
		return constant.Empty, schedule.Interval{}, failure.BadRequestFromString("invalid date format") // nolint:wrapcheck
	}

	candidate, err := schedule.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		return constant.Empty, schedule.Interval{}, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	req.Date = date
	req.StartTime = candidate.Start.String()
	req.EndTime = candidate.End.String()

	if req.BreakoutStart != nil && req.BreakoutEnd != nil {
		breakout, err := schedule.NewInterval(*req.BreakoutStart, *req.BreakoutEnd)
		if err != nil {
			return constant.Empty, schedule.Interval{}, failure.BadRequestFromString("invalid breakout time: "+err.Error()) // nolint:wrapcheck
		}

		start, end := breakout.Start.String(), breakout.End.String()
		req.BreakoutStart, req.BreakoutEnd = &start, &end
	}

	return date, candidate, nil
}

func (s *serviceImpl) normalizeUpdate(req *dto.UpdateBookingRequest) error {
	if req.Date != constant.Empty {
		date, err := schedule.NormalizeDate(req.Date)
		if err != nil {
			return failure.BadRequestFromString("invalid date format") // nolint:wrapcheck
		}

		req.Date = date
	}

	if req.StartTime != constant.Empty {
		start, err := schedule.NormalizeTime(req.StartTime)
		if err != nil {
			return failure.BadRequestFromString("invalid start time format") // nolint:wrapcheck
		}

		req.StartTime = start.String()
	}

	if req.EndTime != constant.Empty {
		end, err := schedule.NormalizeTime(req.EndTime)
		if err != nil {
			return failure.BadRequestFromString("invalid end time format") // nolint:wrapcheck
		}

		req.EndTime = end.String()
	}

	return nil
}

// checkReferences validates that every referenced row exists. Empty ids are
// skipped so partial updates stay cheap.
func (s *serviceImpl) checkReferences(ctx context.Context, roomID, buildingID, categoryID string, userID *string) error {
	if roomID != constant.Empty {
		exists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if room exists")

			return fmt.Errorf("failed to check if room exists: %w", err)
		}

		if !exists {
			return failure.UnprocessableEntity("room does not exist") // nolint:wrapcheck
		}
	}

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

	if userID != nil && *userID != constant.Empty {
		exists, err := s.userRepo.Exist(ctx, shared.FilterByID(*userID, userModel.FieldID, userModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if user exists")

			return fmt.Errorf("failed to check if user exists: %w", err)
		}

		if !exists {
			return failure.UnprocessableEntity("user does not exist") // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) publishEvents(ctx context.Context, eventType, actor string, bookings ...model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	messages := make([]kafka.Message, len(bookings))
	for i, booking := range bookings {
		messages[i] = kafka.Message{
			Key:   booking.ID,
			Value: dto.NewBookingEvent(eventType, actor, booking),
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafkaClient.SendMessages(c, s.cfg.Kafka.Topic.BookingEvents, messages...); err != nil {
			log.Error().Err(err).Str("event", eventType).Msg("failed to publish booking events")
		}
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// findConflict returns the first confirmed booking the widened candidate
// interval overlaps, or nil when the slot is free. Stored rows that fail to
// parse are treated as conflicts rather than silently ignored.
func findConflict(candidate schedule.Interval, bufferMinutes int, existing []model.Booking) *model.Booking {
	widened := candidate.WithBuffer(bufferMinutes)

	for i, booking := range existing {
		occupied, err := schedule.NewInterval(booking.StartTime, booking.EndTime)
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("stored booking has an unparseable interval")

			return &existing[i]
		}

		if widened.Overlaps(occupied) {
			return &existing[i]
		}
	}

	return nil
}

func conflictFailure(conflict model.Booking) error {
	return failure.Conflict(fmt.Sprintf( // nolint:wrapcheck
		"room is already booked on %s from %s to %s",
		conflict.Date, conflict.StartTime, conflict.EndTime,
	))
}

func newAuditLog(bookingID, action, oldValue, newValue, actor string) auditModel.AuditLog {
	return auditModel.AuditLog{
		ID:         uuid.NewString(),
		EntityType: auditModel.EntityTypeBooking,
		EntityID:   bookingID,
		Action:     action,
		OldValue:   oldValue,
		NewValue:   newValue,
		Actor:      actor,
		CreatedAt:  timezone.Now(),
	}
}

func marshalValue(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal audit value")

		return constant.Empty
	}

	return string(raw)
}

func coalesce(value, fallback string) string {
	if value != constant.Empty {
		return value
	}

	return fallback
}
