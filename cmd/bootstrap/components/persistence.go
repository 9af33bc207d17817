package components

import (
	"venuebook/internal/infra/db"
	"venuebook/internal/infra/readrepo"
	"venuebook/internal/infra/uow"
	"venuebook/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		// Non-transactional reads for the query side
		func(u shared.UnitOfWork) shared.CommandReads {
			return u.Reads()
		},
		readrepo.NewBookingReadRepository,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
