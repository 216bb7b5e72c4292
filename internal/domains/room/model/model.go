package model

import "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldBuildingID  = "building_id"
	FieldCategoryID  = "category_id"
	FieldCapacity    = "capacity"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldIsQuadrant  = "is_quadrant"

	SubroomTableName  = "subrooms"
	SubroomEntityName = "subroom"

	FieldSubroomRoomID = "room_id"
)

type Room struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	BuildingID  string `db:"building_id"`
	CategoryID  string `db:"category_id"`
	Capacity    int    `db:"capacity"`
	Description string `db:"description"`
	Image       string `db:"image"`
	IsQuadrant  bool   `db:"is_quadrant"`
	model.Metadata
}

// Subroom is a bookable sub-area of a quadrant room.
type Subroom struct {
	ID          string `db:"id"`
	RoomID      string `db:"room_id"`
	Name        string `db:"name"`
	Capacity    int    `db:"capacity"`
	Description string `db:"description"`
	model.Metadata
}
