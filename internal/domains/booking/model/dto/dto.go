package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	gModel "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID            string  `json:"room_id"             validate:"required,uuid"`
	BuildingID        string  `json:"building_id"         validate:"required,uuid"`
	CategoryID        string  `json:"category_id"         validate:"required,uuid"`
	UserID            *string `json:"user_id"             validate:"omitempty,uuid"`
	FirstName         string  `json:"first_name"          validate:"omitempty,max=100"`
	LastName          string  `json:"last_name"           validate:"omitempty,max=100"`
	Department        *string `json:"department"          validate:"omitempty,max=100"`
	Title             string  `json:"title"               validate:"required,max=200"`
	Date              string  `json:"date"                validate:"required"`
	StartTime         string  `json:"start_time"          validate:"required"`
	EndTime           string  `json:"end_time"            validate:"required"`
	Capacity          int     `json:"capacity"            validate:"omitempty,gt=0"`
	IsRecurring       bool    `json:"is_recurring"`
	IsMealRoom        bool    `json:"is_meal_room"`
	IsBreakRoom       bool    `json:"is_break_room"`
	RecurrenceEndDate string  `json:"recurrence_end_date" validate:"required_if=IsRecurring true"`
	Status            string  `json:"status"              validate:"omitempty,oneof=pending confirmed"`
	Notes             string  `json:"notes"               validate:"omitempty,max=1000"`
	BreakoutStart     *string `json:"breakout_start"      validate:"omitempty"`
	BreakoutEnd       *string `json:"breakout_end"        validate:"omitempty"`
	BreakoutPax       *int    `json:"breakout_pax"        validate:"omitempty,gt=0"`
}

// ToModel materializes one booking row for the given calendar day. The
// request's date and time fields must already be in canonical form.
func (c *CreateBookingRequest) ToModel(user, date string, groupID *string) model.Booking {
	status := model.StatusPending
	if c.Status != constant.Empty {
		status = c.Status
	}

	var recurrenceEndDate *string
	if c.IsRecurring {
		recurrenceEndDate = &c.RecurrenceEndDate
	}

	return model.Booking{
		ID:                uuid.NewString(),
		RoomID:            c.RoomID,
		BuildingID:        c.BuildingID,
		CategoryID:        c.CategoryID,
		UserID:            c.UserID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Department:        c.Department,
		Title:             c.Title,
		Date:              date,
		StartTime:         c.StartTime,
		EndTime:           c.EndTime,
		Capacity:          c.Capacity,
		IsRecurring:       c.IsRecurring,
		IsMealRoom:        c.IsMealRoom,
		IsBreakRoom:       c.IsBreakRoom,
		RecurrenceEndDate: recurrenceEndDate,
		RecurrenceGroupID: groupID,
		Status:            status,
		Notes:             c.Notes,
		BreakoutStart:     c.BreakoutStart,
		BreakoutEnd:       c.BreakoutEnd,
		BreakoutPax:       c.BreakoutPax,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	RoomID      string `db:"room_id"      json:"room_id"      validate:"omitempty,uuid"`
	Title       string `db:"title"        json:"title"        validate:"omitempty,max=200"`
	Date        string `db:"booking_date" json:"date"         validate:"omitempty"`
	StartTime   string `db:"start_time"   json:"start_time"   validate:"omitempty"`
	EndTime     string `db:"end_time"     json:"end_time"     validate:"omitempty"`
	Capacity    int    `db:"capacity"     json:"capacity"     validate:"omitempty,gt=0"`
	Notes       string `db:"notes"        json:"notes"        validate:"omitempty,max=1000"`
	FirstName   string `db:"first_name"   json:"first_name"   validate:"omitempty,max=100"`
	LastName    string `db:"last_name"    json:"last_name"    validate:"omitempty,max=100"`
	Department  string `db:"department"   json:"department"   validate:"omitempty,max=100"`
	IsMealRoom  *bool  `db:"is_meal_room" json:"is_meal_room"`
	IsBreakRoom *bool  `db:"is_break_room" json:"is_break_room"`
}

// ChangesInterval reports whether the update touches any field that feeds
// the conflict check.
func (u *UpdateBookingRequest) ChangesInterval() bool {
	return u.RoomID != constant.Empty ||
		u.Date != constant.Empty ||
		u.StartTime != constant.Empty ||
		u.EndTime != constant.Empty
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed declined cancelled"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type AvailabilityRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid"`
	Date      string `json:"date"       validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type BookingResponse struct {
	ID                string  `json:"id"`
	RoomID            string  `json:"room_id"`
	BuildingID        string  `json:"building_id"`
	CategoryID        string  `json:"category_id"`
	UserID            *string `json:"user_id,omitempty"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Department        *string `json:"department,omitempty"`
	Title             string  `json:"title"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	Capacity          int     `json:"capacity"`
	IsRecurring       bool    `json:"is_recurring"`
	IsMealRoom        bool    `json:"is_meal_room"`
	IsBreakRoom       bool    `json:"is_break_room"`
	RecurrenceEndDate *string `json:"recurrence_end_date,omitempty"`
	RecurrenceGroupID *string `json:"recurrence_group_id,omitempty"`
	Status            string  `json:"status"`
	Notes             string  `json:"notes"`
	ChangedBy         *string `json:"changed_by,omitempty"`
	DeclineReason     *string `json:"decline_reason,omitempty"`
	BreakoutStart     *string `json:"breakout_start,omitempty"`
	BreakoutEnd       *string `json:"breakout_end,omitempty"`
	BreakoutPax       *int    `json:"breakout_pax,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.BuildingID = model.BuildingID
	r.CategoryID = model.CategoryID
	r.UserID = model.UserID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Department = model.Department
	r.Title = model.Title
	r.Date = model.Date
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Capacity = model.Capacity
	r.IsRecurring = model.IsRecurring
	r.IsMealRoom = model.IsMealRoom
	r.IsBreakRoom = model.IsBreakRoom
	r.RecurrenceEndDate = model.RecurrenceEndDate
	r.RecurrenceGroupID = model.RecurrenceGroupID
	r.Status = model.Status
	r.Notes = model.Notes
	r.ChangedBy = model.ChangedBy
	r.DeclineReason = model.DeclineReason
	r.BreakoutStart = model.BreakoutStart
	r.BreakoutEnd = model.BreakoutEnd
	r.BreakoutPax = model.BreakoutPax
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	Actor      string    `json:"actor"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingEvent(eventType, actor string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Date:       booking.Date,
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Status:     booking.Status,
		Actor:      actor,
		OccurredAt: timezone.Now(),
	}
}
