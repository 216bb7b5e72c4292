package dto

import (
	"github.com/google/uuid"

	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/category/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	gModel "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/timezone"
)

type CreateCategoryRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	BuildingID  string `json:"building_id" validate:"required,uuid"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	return model.Category{
		ID:          uuid.NewString(),
		Name:        c.Name,
		BuildingID:  c.BuildingID,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	BuildingID  string `db:"building_id" json:"building_id" validate:"omitempty,uuid"`
	Description string `db:"description" json:"description" validate:"omitempty,max=500"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BuildingID  string `json:"building_id"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.BuildingID = model.BuildingID
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
