package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-finance/internal/domain"
	"github.com/fsdevblog/groph-finance/internal/repository/repoargs"
	"github.com/fsdevblog/groph-finance/internal/service/tokens"
	"github.com/fsdevblog/groph-finance/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr //nolint:wrapcheck
	}
	return &UserService{
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Password string
}

// Register создает юзера со стартовым балансом. Если имя занято, вернется domain.ErrDuplicateKey.
// Сессию не открывает: после регистрации юзер входит через Login.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}

	user, createErr := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Username: args.Username,
		Password: password,
	})
	if createErr != nil {
		return nil, fmt.Errorf("registering user `%s`: %w", args.Username, createErr)
	}
	return user, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет учетные данные и выпускает jwt токен. Возвращает 3 значения: юзер, токен и ошибку.
// Ошибки: domain.ErrRecordNotFound если юзера нет, domain.ErrPasswordMissMatch если пароль неверный.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, userErr := s.userRepo.FindUserByUsername(ctx, args.Username)
	if userErr != nil {
		return nil, "", fmt.Errorf("login user `%s`: %w", args.Username, userErr)
	}

	if !s.hasher.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("login user `%s`: %w", args.Username, domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user `%s`: %s", args.Username, tokenErr.Error())
	}
	return user, token, nil
}

// FindByID возвращает юзера по id из токена сессии.
func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding user %d: %w", id, err)
	}
	return user, nil
}
