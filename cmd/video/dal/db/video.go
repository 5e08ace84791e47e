package db

import (
	"context"
	"strings"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/utils"
	"gorm.io/gorm"
)

// FeedParams is the normalized input of the paginated video feed query.
type FeedParams struct {
	Query         string
	UserId        int64
	OnlyPublished bool
	Page          utils.Pagination
	Sort          utils.Sort
}

// QueryVideos runs the feed pipeline: filter, sort, paginate.
func QueryVideos(ctx context.Context, p *FeedParams) ([]*model.Video, int64, error) {
	tx := DB.WithContext(ctx).Model(&model.Video{})
	if p.Query != "" {
		pattern := "%" + strings.ToLower(p.Query) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if p.UserId > 0 {
		tx = tx.Where("user_id = ?", p.UserId)
	}
	if p.OnlyPublished {
		tx = tx.Where("is_published = ?", true)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var videos []*model.Video
	if err := tx.Order(p.Sort.OrderClause()).
		Offset(p.Page.Offset()).Limit(p.Page.Limit()).
		Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, count, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

// GetVideo returns nil when the video id resolves to nothing.
func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Limit(1).Find(&videos).Error; err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, nil
	}
	return videos[0], nil
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id IN ?", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Updates(updates).Error
}

func SetVideoPublished(ctx context.Context, videoId int64, published bool) error {
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).Update("is_published", published).Error
}

func IncrVisitCount(ctx context.Context, videoId, delta int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).
		Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + ?", delta)).Error
}

// DeleteVideo removes the video together with its comments, the likes on the
// video and on those comments, and its playlist memberships, in one
// transaction. Cascading here keeps the relationship stores free of orphans.
func DeleteVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentIds := tx.Model(&model.Comment{}).Select("comment_id").Where("video_id = ?", videoId)
		if err := tx.Where("target_kind = ? AND target_id IN (?)", model.LikeTargetComment, commentIds).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("target_kind = ? AND target_id = ?", model.LikeTargetVideo, videoId).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("video_id = ?", videoId).Delete(&model.Video{}).Error
	})
}

// GetUserVideoStats aggregates a channel's video count and view sum.
func GetUserVideoStats(ctx context.Context, userId int64) (totalVideos, totalViews int64, err error) {
	type row struct {
		TotalVideos int64
		TotalViews  int64
	}
	var r row
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(visit_count), 0) AS total_views").
		Where("user_id = ?", userId).Scan(&r).Error; err != nil {
		return 0, 0, err
	}
	return r.TotalVideos, r.TotalViews, nil
}

func GetUserVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("user_id = ?", userId).Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
