package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
	"vidtube.com/pkg/validate"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
	FullName string `json:"full_name" validate:"max=128"`
}

// Register creates a user account. Token issuance is the identity service's
// job, so no credential comes back, only the public profile.
func (s *UserService) Register(req *RegisterRequest) (*model.Profile, error) {
	if errs := validate.Payload(req); errs != nil {
		return nil, errno.ParamErr.WithMessage("validation failed").WithErrors(errs)
	}
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errno.ServiceErr
	}
	user := &model.User{
		UserID:   utils.NewObjectID(),
		Username: strings.ToLower(strings.TrimSpace(req.Username)),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		FullName: strings.TrimSpace(req.FullName),
		Password: hashed,
	}
	if err := db.CreateUser(s.ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.UserExistedErr
		}
		return nil, errno.MysqlErr
	}
	return user.Profile(), nil
}

// GetProfile returns the public projection of any user.
func (s *UserService) GetProfile(userID string) (*model.Profile, error) {
	if !utils.IsValidID(userID) {
		return nil, errno.ParamErr.WithMessage("user id is not valid")
	}
	user, err := db.GetUserByID(s.ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("user not found")
		}
		return nil, errno.MysqlErr
	}
	return user.Profile(), nil
}
