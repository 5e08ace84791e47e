package db

import (
	"context"

	"VideoTube.com/cmd/model"
)

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Limit(1).Find(&users).Error; err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return users[0], nil
}

// GetUserLites batch-loads profile projections keyed by user id.
func GetUserLites(ctx context.Context, userIds []int64) (map[int64]*model.UserLite, error) {
	lites := make(map[int64]*model.UserLite, len(userIds))
	if len(userIds) == 0 {
		return lites, nil
	}
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN ?", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		lites[u.UserId] = u.Lite()
	}
	return lites, nil
}
