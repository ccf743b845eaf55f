package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/adelacruz/popx/core"
)

func (a *Adapter) GetSession() (*core.Session, error) {
	ctx := context.Background()
	q := `SELECT user_id FROM public.session WHERE id = 1`

	session := &core.Session{}
	err := a.pool.QueryRow(ctx, q).Scan(&session.ActiveUserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrNoSession
		}
		return nil, err
	}
	return session, nil
}

func (a *Adapter) SetSession(userID int64) error {
	ctx := context.Background()
	q := `INSERT INTO public.session (id, user_id) VALUES (1, $1)
	      ON CONFLICT (id) DO UPDATE SET user_id = EXCLUDED.user_id`

	_, err := a.pool.Exec(ctx, q, userID)
	return err
}

func (a *Adapter) ClearSession() error {
	ctx := context.Background()

	_, err := a.pool.Exec(ctx, `DELETE FROM public.session WHERE id = 1`)
	return err
}
