package model

import "github.com/rhonzzlll/AIMbookingapp-sub001/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRole       = "role"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldDepartment = "department"
	FieldIsVerified = "is_verified"
	FieldLastLogin  = "last_login"
	FieldActive     = "active"
)

type User struct {
	ID         string  `db:"id"`
	Email      string  `db:"email"`
	Password   string  `db:"password"`
	Role       string  `db:"role"`
	FirstName  string  `db:"first_name"`
	LastName   string  `db:"last_name"`
	Department *string `db:"department"`
	IsVerified bool    `db:"is_verified"`
	LastLogin  *string `db:"last_login"`
	Active     bool    `db:"active"`
	model.Metadata
}
