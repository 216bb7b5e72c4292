package dto

import (
	"github.com/google/uuid"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/building/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	gModel "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/timezone"
)

type CreateBuildingRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

func (c *CreateBuildingRequest) ToModel(user, imageURL string) model.Building {
	return model.Building{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Image:       imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBuildingRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
	Image       string `json:"image"     validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=5"`
}

type BuildingResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	gDto.Metadata
}

func (r *BuildingResponse) FromModel(model model.Building) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetBuildingsResponse struct {
	Buildings []BuildingResponse `json:"buildings"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetBuildingsResponse) FromModels(models []model.Building, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Buildings = make([]BuildingResponse, len(models))
	for i, mod := range models {
		r.Buildings[i].FromModel(mod)
	}
}
