package dto

import (
	"github.com/google/uuid"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	gModel "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/timezone"
)

type SubroomRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Capacity    int    `json:"capacity"    validate:"required,gt=0"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

type CreateRoomRequest struct {
	Name        string           `json:"name"        validate:"required,max=100"`
	BuildingID  string           `json:"building_id" validate:"required,uuid"`
	CategoryID  string           `json:"category_id" validate:"required,uuid"`
	Capacity    int              `json:"capacity"    validate:"required,gt=0"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Image       string           `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=5"`
	IsQuadrant  bool             `json:"is_quadrant"`
	Subrooms    []SubroomRequest `json:"subrooms"    validate:"omitempty,dive"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		BuildingID:  c.BuildingID,
		CategoryID:  c.CategoryID,
		Capacity:    c.Capacity,
		Description: c.Description,
		Image:       imageURL,
		IsQuadrant:  c.IsQuadrant,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ToSubroomModels materializes the subroom rows for a quadrant room.
func (c *CreateRoomRequest) ToSubroomModels(roomID, user string) []model.Subroom {
	subrooms := make([]model.Subroom, len(c.Subrooms))
	for i, sub := range c.Subrooms {
		subrooms[i] = model.Subroom{
			ID:          uuid.NewString(),
			RoomID:      roomID,
			Name:        sub.Name,
			Capacity:    sub.Capacity,
			Description: sub.Description,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return subrooms
}

type UpdateRoomRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	BuildingID  string `db:"building_id" json:"building_id" validate:"omitempty,uuid"`
	CategoryID  string `db:"category_id" json:"category_id" validate:"omitempty,uuid"`
	Capacity    int    `db:"capacity"    json:"capacity"    validate:"omitempty,gt=0"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Image       string `json:"image"     validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

type SubroomResponse struct {
	ID          string `json:"id"`
	RoomID      string `json:"room_id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

func (r *SubroomResponse) FromModel(model model.Subroom) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Description = model.Description
}

type RoomResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	BuildingID  string            `json:"building_id"`
	CategoryID  string            `json:"category_id"`
	Capacity    int               `json:"capacity"`
	Description string            `json:"description"`
	Image       string            `json:"image"`
	IsQuadrant  bool              `json:"is_quadrant"`
	Subrooms    []SubroomResponse `json:"subrooms,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.BuildingID = model.BuildingID
	r.CategoryID = model.CategoryID
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.Image = model.Image
	r.IsQuadrant = model.IsQuadrant
	r.Metadata.FromModel(model.Metadata)
}

func (r *RoomResponse) WithSubrooms(models []model.Subroom) {
	r.Subrooms = make([]SubroomResponse, len(models))
	for i, mod := range models {
		r.Subrooms[i].FromModel(mod)
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
