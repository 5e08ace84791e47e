package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"gorm.io/gorm"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

// GetTweet returns nil when the tweet id resolves to nothing.
func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).Limit(1).Find(&tweets).Error; err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return nil, nil
	}
	return tweets[0], nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	return DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("tweet_id = ?", tweetId).Update("content", content).Error
}

// DeleteTweet removes the tweet together with the likes pointing at it.
func DeleteTweet(ctx context.Context, tweetId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_kind = ? AND target_id = ?", model.LikeTargetTweet, tweetId).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		return tx.Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error
	})
}

func GetUserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).
		Where("user_id = ?", userId).
		Order("created_at desc").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}
