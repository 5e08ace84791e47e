package db

import (
	"context"

	"VideoTube.com/cmd/model"
	"gorm.io/gorm/clause"
)

// CreateSubscription inserts the pair fact. A concurrent duplicate insert is
// swallowed by the unique index; inserted reports whether this call won.
func CreateSubscription(ctx context.Context, sub *model.Subscription) (inserted bool, err error) {
	res := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func DeleteSubscription(ctx context.Context, subscriberId, channelId int64) (removed bool, err error) {
	res := DB.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// GetSubscription returns nil when the pair fact does not exist.
func GetSubscription(ctx context.Context, subscriberId, channelId int64) (*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Limit(1).Find(&subs).Error; err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}
	return subs[0], nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSubscribers lists a channel's subscriptions, newest first.
func GetSubscribers(ctx context.Context, channelId int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func GetSubscribedChannels(ctx context.Context, subscriberId int64) ([]*model.Subscription, error) {
	var subs []*model.Subscription
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
