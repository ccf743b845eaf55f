package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/adelacruz/popx/core"
)

const userColumns = `id, full_name, phone_number, email_address, password, company_name, is_agency, role, profile_pic`

func scanUser(row pgx.Row) (*core.User, error) {
	user := &core.User{}
	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.PhoneNumber,
		&user.EmailAddress,
		&user.Password,
		&user.CompanyName,
		&user.IsAgency,
		&user.Role,
		&user.ProfilePicture,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) ListUsers() ([]core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users ORDER BY id`

	rows, err := a.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []core.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (a *Adapter) GetUserByEmail(email string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users WHERE email_address = $1`

	return scanUser(a.pool.QueryRow(ctx, q, email))
}

func (a *Adapter) GetUserByCredentials(email, password string) (*core.User, error) {
	ctx := context.Background()
	q := `SELECT ` + userColumns + ` FROM public.users WHERE email_address = $1 AND password = $2`

	return scanUser(a.pool.QueryRow(ctx, q, email, password))
}

func (a *Adapter) AppendUser(u *core.User) error {
	ctx := context.Background()
	q := `INSERT INTO public.users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := a.pool.Exec(ctx, q,
		u.ID,
		u.FullName,
		u.PhoneNumber,
		u.EmailAddress,
		u.Password,
		u.CompanyName,
		u.IsAgency,
		u.Role,
		u.ProfilePicture,
	)
	return err
}

func (a *Adapter) UpdateUserByID(id int64, update core.UserUpdate) (*core.User, error) {
	ctx := context.Background()
	q := `UPDATE public.users SET profile_pic = COALESCE($1, profile_pic) WHERE id = $2 RETURNING ` + userColumns

	return scanUser(a.pool.QueryRow(ctx, q, update.ProfilePicture, id))
}
