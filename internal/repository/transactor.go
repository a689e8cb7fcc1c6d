package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type Transactor struct {
	conn PgConnection
}

func NewTransactor(conn PgConnection) *Transactor {
	mustPing(conn, "transactor")
	return &Transactor{
		conn: conn,
	}
}

func (t *Transactor) InTx(ctx context.Context, fn func(repos Repos) error) error {
	tx, err := t.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	if err = fn(reposFor(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}

func reposFor(tx pgx.Tx) Repos {
	return Repos{
		Sessions: &SessionsRepository{conn: tx},
		Streaks:  &StreaksRepository{conn: tx},
		Reports:  &ReportsRepository{conn: tx},
	}
}
