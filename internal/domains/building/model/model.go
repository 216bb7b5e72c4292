package model

import "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"

const (
	TableName  = "buildings"
	EntityName = "building"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
)

type Building struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Image       string `db:"image"`
	model.Metadata
}
