package model

import "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID          = "id"
	FieldName        = "name"
	FieldBuildingID  = "building_id"
	FieldDescription = "description"
)

type Category struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	BuildingID  string `db:"building_id"`
	Description string `db:"description"`
	model.Metadata
}
