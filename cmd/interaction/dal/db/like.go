package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"gorm.io/gorm/clause"
)

// CreateLike inserts the fact. The unique index on the target tuple makes a
// concurrent duplicate insert a no-op; inserted reports whether this call won.
func CreateLike(ctx context.Context, like *model.Like) (inserted bool, err error) {
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func DeleteLike(ctx context.Context, userId int64, targetKind string, targetId int64) (removed bool, err error) {
	res := DB.WithContext(ctx).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Delete(&model.Like{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetLike returns nil when no fact exists for the tuple.
func GetLike(ctx context.Context, userId int64, targetKind string, targetId int64) (*model.Like, error) {
	var likes []*model.Like
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userId, targetKind, targetId).
		Limit(1).Find(&likes).Error; err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return likes[0], nil
}

func GetLikeCount(ctx context.Context, targetKind string, targetId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id = ?", targetKind, targetId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountLikesForVideos sums the likes across a channel's videos for the stats view.
func CountLikesForVideos(ctx context.Context, videoIds []int64) (count int64, err error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id IN ?", model.LikeTargetVideo, videoIds).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedVideoIds lists the video ids a user has liked, newest like first.
func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_kind = ?", userId, model.LikeTargetVideo).
		Order("created_at desc").
		Select("target_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
