package commands

import (
	"context"

	"venuebook/internal/domain/resource"
	"venuebook/internal/domain/schedule"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type ResourceCommands interface {
	// UpdateHours replaces a resource's weekly opening hours. Existing
	// bookings are untouched; the new grid applies to future checks only.
	UpdateHours(ctx context.Context, resourceID uuid.UUID, hours []schedule.RawDayHours) (*resource.Resource, error)
}

type resourceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewResourceCommands(uow shared.UnitOfWork) ResourceCommands {
	return &resourceCommandsImpl{uow: uow}
}

func (u *resourceCommandsImpl) UpdateHours(ctx context.Context, resourceID uuid.UUID, raw []schedule.RawDayHours) (*resource.Resource, error) {
	week, err := schedule.ParseWeekHours(raw)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var updated *resource.Resource
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reads().ResourceByID(ctx, resourceID)
		if err != nil {
			return shared.MarkNotFound(err, ErrResourceNotFound)
		}
		res.ReplaceHours(week)
		if err := tx.Resources().SaveHours(ctx, res); err != nil {
			return err
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
