package dto

import (
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/user/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
)

type UpdateUserRequest struct {
	FirstName  string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName   string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Department string `db:"department" json:"department" validate:"omitempty,max=100"`
	Role       string `db:"role"       json:"role"       validate:"omitempty,oneof=superadmin admin user"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Department string `json:"department,omitempty"`
	IsVerified bool   `json:"is_verified"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.FirstName = model.FirstName
	r.LastName = model.LastName

	if model.Department != nil {
		r.Department = *model.Department
	}

	r.IsVerified = model.IsVerified
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
