package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/otel"
	"github.com/rhonzzlll/AIMbookingapp-sub001/infras/postgres"
	"github.com/rhonzzlll/AIMbookingapp-sub001/internal/domains/booking/model"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/constant"
	gDto "github.com/rhonzzlll/AIMbookingapp-sub001/shared/dto"
	gRepo "github.com/rhonzzlll/AIMbookingapp-sub001/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindConfirmedForRoomDate(ctx context.Context, roomID, date, excludeID string) ([]model.Booking, error)
	FindConfirmedForRoomDateTx(ctx context.Context, sqltx *sqlx.Tx, roomID, date, excludeID string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// FindConfirmedForRoomDate returns every confirmed booking on the room and
// calendar day, ordered by start time. excludeID may be empty.
func (repo *repositoryImpl) FindConfirmedForRoomDate(ctx context.Context, roomID, date, excludeID string) ([]model.Booking, error) {
	return repo.GetAll(ctx, confirmedQueryParams(), confirmedFilter(roomID, date, excludeID)) // nolint:wrapcheck
}

// FindConfirmedForRoomDateTx is FindConfirmedForRoomDate inside an open
// transaction, so the read shares the transaction's row locks.
func (repo *repositoryImpl) FindConfirmedForRoomDateTx(ctx context.Context, sqltx *sqlx.Tx, roomID, date, excludeID string) ([]model.Booking, error) {
	return repo.GetAllTx(ctx, sqltx, confirmedQueryParams(), confirmedFilter(roomID, date, excludeID)) // nolint:wrapcheck
}

func confirmedQueryParams() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}
}

func confirmedFilter(roomID, date, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    date,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    model.StatusConfirmed,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
