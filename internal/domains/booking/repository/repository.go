package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"paradasia/infras/otel"
	"paradasia/infras/postgres"
	"paradasia/internal/domains/booking/model"
	"paradasia/shared/constant"
	gDto "paradasia/shared/dto"
	"paradasia/shared/logger"
	gRepo "paradasia/shared/repository"
	"paradasia/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ConfirmPayment(ctx context.Context, reference, actor string) (bool, error)
	TransitionState(ctx context.Context, id string, from, to model.State, actor string) (bool, error)
	SumPaidRevenueMinor(ctx context.Context) (int64, error)
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

// ConfirmPayment flips a pending booking to (confirmed, paid), keyed on the
// payment reference. The WHERE clause is the atomic not-already-paid guard:
// when the webhook and the demo path race, exactly one caller sees true.
func (repo *repositoryImpl) ConfirmPayment(ctx context.Context, reference, actor string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ConfirmPayment")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s
		SET booking_status = :to_booking, payment_status = :to_payment, modified_at = :modified_at, modified_by = :modified_by
		WHERE payment_reference = :reference AND booking_status = :from_booking AND payment_status != :to_payment`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"to_booking":   string(model.BookingConfirmed),
		"to_payment":   string(model.PaymentPaid),
		"from_booking": string(model.BookingPending),
		"reference":    reference,
		"modified_at":  timezone.Now(),
		"modified_by":  actor,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to confirm payment (%s): %w", reference, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

// TransitionState moves a booking between lifecycle states conditioned on the
// exact state the caller observed, so a concurrent transition loses cleanly
// instead of overwriting.
func (repo *repositoryImpl) TransitionState(ctx context.Context, id string, from, to model.State, actor string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionState")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s
		SET booking_status = :to_booking, payment_status = :to_payment, modified_at = :modified_at, modified_by = :modified_by
		WHERE id = :id AND booking_status = :from_booking AND payment_status = :from_payment`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":           id,
		"to_booking":   string(to.Booking),
		"to_payment":   string(to.Payment),
		"from_booking": string(from.Booking),
		"from_payment": string(from.Payment),
		"modified_at":  timezone.Now(),
		"modified_by":  actor,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to transition booking (%s): %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) SumPaidRevenueMinor(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumPaidRevenueMinor")
	defer scope.End()

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s = $1",
		model.FieldTotalAmountMinor, model.TableName, model.FieldPaymentStatus)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int64

	err := repo.db.Read.GetContext(ctx, &total, query, string(model.PaymentPaid))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum paid revenue: %w", err)
	}

	return total, nil
}
