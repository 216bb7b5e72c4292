package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/audit/model"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	gRepo "github.com/rhonzzlll/AIMbookingapp-sub001/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.AuditLog) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.AuditLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AuditLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuditLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
