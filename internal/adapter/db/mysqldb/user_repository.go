package mysqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/JacobNatural/task-manager/internal/core/domain"
	"github.com/JacobNatural/task-manager/internal/core/ports"
)

const selectUserColumns = `id, seq, name, surname, username`

const upsertUserQuery = `
INSERT INTO users (id, name, surname, username)
VALUES (:id, :name, :surname, :username) AS new
ON DUPLICATE KEY UPDATE
  name = new.name,
  surname = new.surname,
  username = new.username
`

type userRow struct {
	ID       string `db:"id"`
	Seq      uint64 `db:"seq"`
	Name     string `db:"name"`
	Surname  string `db:"surname"`
	Username string `db:"username"`
}

type userPageRow struct {
	Total    int64          `db:"total"`
	ID       sql.NullString `db:"id"`
	Seq      sql.NullInt64  `db:"seq"`
	Name     sql.NullString `db:"name"`
	Surname  sql.NullString `db:"surname"`
	Username sql.NullString `db:"username"`
}

func (r userPageRow) count() int64 { return r.Total }

func (r userPageRow) record() (domain.User, bool) {
	if !r.ID.Valid {
		return domain.User{}, false
	}
	return domain.User{
		ID:       r.ID.String,
		Name:     r.Name.String,
		Surname:  r.Surname.String,
		Username: r.Username.String,
	}, true
}

type UserRepository struct {
	pagedTable[userPageRow, domain.User]
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		pagedTable: pagedTable[userPageRow, domain.User]{
			db:      db,
			table:   "users",
			columns: []string{"id", "seq", "name", "surname", "username"},
			fields:  userColumns,
		},
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	return r.findOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE id = ?`, id)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.findOne(ctx, `SELECT `+selectUserColumns+` FROM users WHERE username = ? ORDER BY seq LIMIT 1`, username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	row := userRow{ID: user.ID, Name: user.Name, Surname: user.Surname, Username: user.Username}
	if _, err := r.db.NamedExecContext(ctx, upsertUserQuery, row); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:       row.ID,
		Name:     row.Name,
		Surname:  row.Surname,
		Username: row.Username,
	}
}
