package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// GetCommentInfo returns nil when the comment id resolves to nothing.
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comments []*model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Limit(1).Find(&comments).Error; err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, nil
	}
	return comments[0], nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).
		Where("comment_id = ?", commentId).Update("content", content).Error
}

// DeleteComment removes the comment together with the likes pointing at it.
func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", model.LikeTargetComment, commentId).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error
	})
}

func GetVideoCommentsPaged(ctx context.Context, videoId int64, offset, limit int) ([]*model.Comment, int64, error) {
	var comments []*model.Comment
	var count int64
	tx := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId)
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := tx.Order("created_at desc").Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
