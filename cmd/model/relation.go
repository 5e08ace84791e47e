package model

import "time"

// Subscription links a subscriber to a channel. The composite unique index
// keeps the pair fact at-most-one under concurrent toggles.
type Subscription struct {
	SubscriptionId int64     `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64     `json:"subscriber_id" gorm:"uniqueIndex:uk_subscription"`
	ChannelId      int64     `json:"channel_id" gorm:"uniqueIndex:uk_subscription"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
