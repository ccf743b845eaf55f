// Package pgx implements core.AccountStorage over a pgx connection
// pool, for deployments that outgrow the client-local medium. The
// library semantics are unchanged: a linear user listing and a single
// session slot.
//
// Expected schema:
//
//	CREATE TABLE public.users (
//	    id            bigint PRIMARY KEY,
//	    full_name     text NOT NULL,
//	    phone_number  text NOT NULL,
//	    email_address text NOT NULL UNIQUE,
//	    password      text NOT NULL,
//	    company_name  text NOT NULL DEFAULT '',
//	    is_agency     boolean NOT NULL DEFAULT false,
//	    role          text NOT NULL,
//	    profile_pic   text NOT NULL DEFAULT ''
//	);
//
//	CREATE TABLE public.session (
//	    id      smallint PRIMARY KEY CHECK (id = 1),
//	    user_id bigint NOT NULL
//	);
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adelacruz/popx/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.AccountStorage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
