package store

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- shared fakes ---------- */

type scanFunc func(dest ...any) error

// fakeRow implements pgx.Row for single-row scans.
type fakeRow struct{ scan scanFunc }

func (r fakeRow) Scan(dest ...any) error { return r.scan(dest...) }

// fakeRows implements pgx.Rows; each element of scans fills one row.
type fakeRows struct {
	scans []scanFunc
	idx   int
	err   error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.scans) }
func (r *fakeRows) Scan(dest ...any) error {
	s := r.scans[r.idx]
	r.idx++
	return s(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }
