package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/pkg/uow"
)

const userColumns = "id, created_at, username, hash, cash"

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера с начальным балансом по умолчанию. В случае конфликта юзернейма возвращает
// ошибку domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		"INSERT INTO users (username, hash) VALUES ($1, $2) RETURNING "+userColumns,
		user.Username, user.Password,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user `%s`", user.Username)
	}
	return dbUser, nil
}

// FindUserByUsername ищет юзера по юзернейму. Возвращает domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return dbUser, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.Username, &user.Password, &user.Cash); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
