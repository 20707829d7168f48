package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, sql, args...)
	if err != nil {
		return pgconn.CommandTag{}, errors.Wrap(err, "error executing sql query")
	}
	return tag, nil
}
