package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/rhonzzlll/AIMbookingapp-sub001/config"
	kafkaMocks "github.com/rhonzzlll/AIMbookingapp-sub001/infras/kafka/mocks"
	otelMocks "github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel/mocks"
	txMocks "github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres/mocks"
	auditMocks "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/mocks"
	bookingMocks "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/mocks"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/service"
	buildingMocks "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/mocks"
	categoryMocks "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/mocks"
	roomMocks "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/mocks"
	userMocks "github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/user/mocks"
	cacheMocks "github.com/rhonzzlll/AIMbookingapp-sub001/shared/cache/mocks"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/failure"
)

type bookingMockSet struct {
	repo         *bookingMocks.MockBooking
	roomRepo     *roomMocks.MockRoom
	buildingRepo *buildingMocks.MockBuilding
	categoryRepo *categoryMocks.MockCategory
	userRepo     *userMocks.MockUser
	auditRepo    *auditMocks.MockAudit
	cache        *cacheMocks.MockRedisCache
}

func newBookingService(ctrl *gomock.Controller, bufferMinutes int) (service.Booking, *bookingMockSet) {
	mocks := &bookingMockSet{
		repo:         bookingMocks.NewMockBooking(ctrl),
		roomRepo:     roomMocks.NewMockRoom(ctrl),
		buildingRepo: buildingMocks.NewMockBuilding(ctrl),
		categoryRepo: categoryMocks.NewMockCategory(ctrl),
		userRepo:     userMocks.NewMockUser(ctrl),
		auditRepo:    auditMocks.NewMockAudit(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Booking.BufferMinutes = bufferMinutes
	cfg.App.Booking.MaxRecurrenceDays = 366

	// Cache invalidation runs on background goroutines after the call
	// returns, so it is never part of a test's assertions.
	mocks.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mocks.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mocks.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(
		mocks.repo,
		mocks.roomRepo,
		mocks.buildingRepo,
		mocks.categoryRepo,
		mocks.userRepo,
		mocks.auditRepo,
		txMocks.NewTxRunner(),
		cfg,
		mocks.cache,
		kafkaMocks.NewMockClient(ctrl),
		otelMocks.NewOtel(),
	)

	return svc, mocks
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:     "6f1b24c5-3b5d-4f6e-9a2c-7d8e9f0a1b2c",
		BuildingID: "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d",
		CategoryID: "9e8d7c6b-5a4f-4e3d-8c2b-1a0f9e8d7c6b",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Title:      "Weekly Sync",
		Date:       "2026-09-01",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Capacity:   8,
	}
}

func confirmedBooking(start, end string) model.Booking {
	return model.Booking{
		ID:        "b7e4a1d2-0f3c-4e5d-8a9b-6c7d8e9f0a1b",
		RoomID:    "6f1b24c5-3b5d-4f6e-9a2c-7d8e9f0a1b2c",
		Date:      "2026-09-01",
		StartTime: start,
		EndTime:   end,
		Status:    model.StatusConfirmed,
	}
}

func expectReferencesExist(mocks *bookingMockSet) {
	mocks.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.buildingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mocks.categoryRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		buffer    int
		req       func() dto.CreateBookingRequest
		setupMock func(mocks *bookingMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation on a free slot",
			req:  validCreateRequest,
			setupMock: func(mocks *bookingMockSet) {
				expectReferencesExist(mocks)
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), "2026-09-01", "").
					Return(nil, nil)
				mocks.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "back-to-back booking is allowed with zero buffer",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartTime = "11:00"
				req.EndTime = "12:00"

				return req
			},
			setupMock: func(mocks *bookingMockSet) {
				expectReferencesExist(mocks)
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedBooking("10:00:00", "11:00:00")}, nil)
				mocks.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "back-to-back booking is rejected with a buffer",
			buffer: 15,
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartTime = "11:00"
				req.EndTime = "12:00"

				return req
			},
			setupMock: func(mocks *bookingMockSet) {
				expectReferencesExist(mocks)
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedBooking("10:00:00", "11:00:00")}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "overlapping booking is rejected",
			setupMock: func(mocks *bookingMockSet) {
				expectReferencesExist(mocks)
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedBooking("10:30:00", "11:30:00")}, nil)
			},
			req:      validCreateRequest,
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown room is rejected",
			req:  validCreateRequest,
			setupMock: func(mocks *bookingMockSet) {
				mocks.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: 422,
		},
		{
			name: "invalid start time is rejected before any query",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartTime = "25:00"

				return req
			},
			setupMock: func(mocks *bookingMockSet) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "end before start is rejected",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartTime = "11:00"
				req.EndTime = "10:00"

				return req
			},
			setupMock: func(mocks *bookingMockSet) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error surfaces as internal",
			req:  validCreateRequest,
			setupMock: func(mocks *bookingMockSet) {
				expectReferencesExist(mocks)
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newBookingService(ctrl, tt.buffer)
			tt.setupMock(mocks)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req())

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, 1)
			assert.NotEmpty(t, res[0].ID)
			assert.Equal(t, model.StatusPending, res[0].Status)
			assert.Equal(t, "2026-09-01", res[0].Date)
		})
	}
}

func TestBookingService_CreateRecurring(t *testing.T) {
	recurringRequest := func() dto.CreateBookingRequest {
		req := validCreateRequest()
		req.IsRecurring = true
		req.RecurrenceEndDate = "2026-09-03"

		return req
	}

	t.Run("every day of the range is checked and written once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		expectReferencesExist(mocks)
		mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		for _, day := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
			mocks.repo.EXPECT().
				FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), day, "").
				Return(nil, nil)
		}

		var inserted []model.Booking

		mocks.repo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, models []model.Booking) error {
				inserted = models

				return nil
			})
		mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.Create(ctx, recurringRequest())

		assert.NoError(t, err)
		assert.Len(t, inserted, 3)

		assert.Len(t, res, 3)
		for i, day := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
			assert.Equal(t, day, res[i].Date)
			assert.NotEmpty(t, res[i].ID)
			assert.NotNil(t, res[i].RecurrenceGroupID)
			assert.Equal(t, *res[0].RecurrenceGroupID, *res[i].RecurrenceGroupID)
		}

		for _, booking := range inserted {
			assert.NotNil(t, booking.RecurrenceGroupID)
			assert.Equal(t, *inserted[0].RecurrenceGroupID, *booking.RecurrenceGroupID)
			assert.NotEqual(t, inserted[0].ID, "")
		}

		assert.NotEqual(t, inserted[0].ID, inserted[1].ID)
		assert.NotEqual(t, res[0].ID, res[1].ID)
	})

	t.Run("a conflict on any day aborts the whole series", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		expectReferencesExist(mocks)
		mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		mocks.repo.EXPECT().
			FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), "2026-09-01", "").
			Return(nil, nil)
		mocks.repo.EXPECT().
			FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), "2026-09-02", "").
			Return([]model.Booking{confirmedBooking("10:30:00", "11:30:00")}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.Create(ctx, recurringRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("recurrence end before start is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newBookingService(ctrl, 0)

		req := recurringRequest()
		req.RecurrenceEndDate = "2026-08-31"

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("a range longer than the configured cap is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newBookingService(ctrl, 0)

		req := recurringRequest()
		req.RecurrenceEndDate = "2028-09-01"

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	pending := func() model.Booking {
		booking := confirmedBooking("10:00:00", "11:00:00")
		booking.Status = model.StatusPending

		return booking
	}

	t.Run("changing only the notes skips the conflict check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending(), nil)
		mocks.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mocks.auditRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateBookingRequest{Notes: "projector needed"}, pending().ID)

		assert.NoError(t, err)
	})

	t.Run("changing the times re-runs the conflict check excluding itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)
		current := pending()

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), current.RoomID).Return(nil)
		mocks.repo.EXPECT().
			FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), current.RoomID, current.Date, current.ID).
			Return(nil, nil)
		mocks.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateBookingRequest{StartTime: "2:00 PM", EndTime: "3:00 PM"}, current.ID)

		assert.NoError(t, err)
	})

	t.Run("moving onto an occupied slot is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)
		current := pending()

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
		mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		mocks.repo.EXPECT().
			FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{confirmedBooking("14:00:00", "15:00:00")}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateBookingRequest{StartTime: "14:30", EndTime: "15:30"}, current.ID)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("cancelled bookings cannot be updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)
		current := pending()
		current.Status = model.StatusCancelled

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateBookingRequest{Notes: "too late"}, current.ID)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown booking returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateBookingRequest{Notes: "anything"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_ChangeStatus(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		req       dto.ChangeStatusRequest
		setupMock func(mocks *bookingMockSet, current model.Booking)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending booking can be confirmed on a free slot",
			from: model.StatusPending,
			req:  dto.ChangeStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), current.RoomID).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), current.RoomID, current.Date, current.ID).
					Return(nil, nil)
				mocks.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "confirming loses to an already confirmed overlap",
			from: model.StatusPending,
			req:  dto.ChangeStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
				mocks.roomRepo.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.repo.EXPECT().
					FindConfirmedForRoomDateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{confirmedBooking("10:30:00", "11:30:00")}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "declining requires a reason",
			from: model.StatusPending,
			req:  dto.ChangeStatusRequest{Status: model.StatusDeclined},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "declining with a reason succeeds",
			from: model.StatusPending,
			req:  dto.ChangeStatusRequest{Status: model.StatusDeclined, Reason: "room under maintenance"},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
				mocks.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "confirmed booking can be cancelled",
			from: model.StatusConfirmed,
			req:  dto.ChangeStatusRequest{Status: model.StatusCancelled},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
				mocks.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				mocks.auditRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cancelled booking is terminal",
			from: model.StatusCancelled,
			req:  dto.ChangeStatusRequest{Status: model.StatusConfirmed},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "declined booking is terminal",
			from: model.StatusDeclined,
			req:  dto.ChangeStatusRequest{Status: model.StatusCancelled},
			setupMock: func(mocks *bookingMockSet, current model.Booking) {
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newBookingService(ctrl, 0)

			current := confirmedBooking("10:00:00", "11:00:00")
			current.Status = tt.from

			// A reason-less decline fails validation before the transaction.
			if !(tt.req.Status == model.StatusDeclined && tt.req.Reason == "") {
				mocks.repo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
			}

			tt.setupMock(mocks, current)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-admin-id")
			err := svc.ChangeStatus(ctx, tt.req, current.ID)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_CheckAvailability(t *testing.T) {
	validRequest := dto.AvailabilityRequest{
		RoomID:    "6f1b24c5-3b5d-4f6e-9a2c-7d8e9f0a1b2c",
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "11:00",
	}

	t.Run("free slot is available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		mocks.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mocks.repo.EXPECT().
			FindConfirmedForRoomDate(gomock.Any(), validRequest.RoomID, "2026-09-01", "").
			Return([]model.Booking{confirmedBooking("08:00:00", "09:00:00")}, nil)

		res, err := svc.CheckAvailability(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("occupied slot reports the conflicting interval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		mocks.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mocks.repo.EXPECT().
			FindConfirmedForRoomDate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{confirmedBooking("10:30:00", "11:30:00")}, nil)

		res, err := svc.CheckAvailability(context.Background(), validRequest)

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Contains(t, res.Message, "10:30:00")
	})

	t.Run("the same question twice gets the same answer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		mocks.roomRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
		mocks.repo.EXPECT().
			FindConfirmedForRoomDate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(2)

		first, err := svc.CheckAvailability(context.Background(), validRequest)
		assert.NoError(t, err)

		second, err := svc.CheckAvailability(context.Background(), validRequest)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("invalid time format is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _ := newBookingService(ctrl, 0)

		req := validRequest
		req.StartTime = "not-a-time"

		_, err := svc.CheckAvailability(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("found booking is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)
		current := confirmedBooking("10:00:00", "11:00:00")

		mocks.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		res, err := svc.Get(context.Background(), current.ID)

		assert.NoError(t, err)
		assert.Equal(t, current.ID, res.ID)
		assert.Equal(t, current.StartTime, res.StartTime)
	})

	t.Run("missing booking returns not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newBookingService(ctrl, 0)

		mocks.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mocks.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
