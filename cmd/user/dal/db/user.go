package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.WithMessage(err, "CreateUser failed")
	}
	return nil
}

func GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UserExists(ctx context.Context, userID string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, errors.WithMessage(err, "UserExists failed")
	}
	return count > 0, nil
}
