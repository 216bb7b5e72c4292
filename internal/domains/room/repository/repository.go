package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/room/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/logger"
	gRepo "github.com/rhonzzlll/AIMbookingapp-sub001/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) error
}

type Subroom interface {
	InsertBulk(ctx context.Context, models []model.Subroom) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Subroom) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Subroom, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx acquires a row lock on the room for the lifetime of the
// transaction, serializing concurrent conflict checks on the same room.
func (repo *repositoryImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE", model.FieldID, model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var lockedID string

	err = sqltx.GetContext(ctx, &lockedID, query, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room: %w", err)
	}

	return nil
}

type subroomRepositoryImpl struct {
	gRepo.Repository[model.Subroom]
	db   *postgres.Connection
	otel otel.Otel
}

func NewSubroom(db *postgres.Connection, otel otel.Otel) Subroom {
	return &subroomRepositoryImpl{
		Repository: gRepo.NewRepository[model.Subroom](model.SubroomEntityName, model.SubroomTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
