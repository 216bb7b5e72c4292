package model

import "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldRoomID            = "room_id"
	FieldBuildingID        = "building_id"
	FieldCategoryID        = "category_id"
	FieldUserID            = "user_id"
	FieldFirstName         = "first_name"
	FieldLastName          = "last_name"
	FieldDepartment        = "department"
	FieldTitle             = "title"
	FieldDate              = "booking_date"
	FieldStartTime         = "start_time"
	FieldEndTime           = "end_time"
	FieldCapacity          = "capacity"
	FieldIsRecurring       = "is_recurring"
	FieldIsMealRoom        = "is_meal_room"
	FieldIsBreakRoom       = "is_break_room"
	FieldRecurrenceEndDate = "recurrence_end_date"
	FieldRecurrenceGroupID = "recurrence_group_id"
	FieldStatus            = "status"
	FieldNotes             = "notes"
	FieldChangedBy         = "changed_by"
	FieldDeclineReason     = "decline_reason"
	FieldBreakoutStart     = "breakout_start"
	FieldBreakoutEnd       = "breakout_end"
	FieldBreakoutPax       = "breakout_pax"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

// statusTransitions is the full status machine. Declined and cancelled are
// terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusDeclined, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusDeclined:  {},
	StatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// IsValidStatus reports whether the value is a known booking status.
func IsValidStatus(status string) bool {
	_, ok := statusTransitions[status]

	return ok
}

// Booking stores its date as YYYY-MM-DD and its times as HH:MM:SS, both in
// canonical normalized form. Only confirmed bookings participate in
// conflict checks.
type Booking struct {
	ID                string  `db:"id"`
	RoomID            string  `db:"room_id"`
	BuildingID        string  `db:"building_id"`
	CategoryID        string  `db:"category_id"`
	UserID            *string `db:"user_id"`
	FirstName         string  `db:"first_name"`
	LastName          string  `db:"last_name"`
	Department        *string `db:"department"`
	Title             string  `db:"title"`
	Date              string  `db:"booking_date"`
	StartTime         string  `db:"start_time"`
	EndTime           string  `db:"end_time"`
	Capacity          int     `db:"capacity"`
	IsRecurring       bool    `db:"is_recurring"`
	IsMealRoom        bool    `db:"is_meal_room"`
	IsBreakRoom       bool    `db:"is_break_room"`
	RecurrenceEndDate *string `db:"recurrence_end_date"`
	RecurrenceGroupID *string `db:"recurrence_group_id"`
	Status            string  `db:"status"`
	Notes             string  `db:"notes"`
	ChangedBy         *string `db:"changed_by"`
	DeclineReason     *string `db:"decline_reason"`
	BreakoutStart     *string `db:"breakout_start"`
	BreakoutEnd       *string `db:"breakout_end"`
	BreakoutPax       *int    `db:"breakout_pax"`
	model.Metadata
}
