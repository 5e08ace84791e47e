package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/relation/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

// ToggleResult reports which way a subscription toggle went.
type ToggleResult struct {
	Action string              `json:"action"`
	Fact   *model.Subscription `json:"fact,omitempty"`
}

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription subscribes if no pair fact exists and unsubscribes
// otherwise. Self-subscription is rejected before any store call.
func (s *RelationService) ToggleSubscription(subscriberId, channelId int64) (*ToggleResult, error) {
	if !utils.ValidID(subscriberId) || !utils.ValidID(channelId) {
		return nil, errno.InvalidIdentifierErr
	}
	if subscriberId == channelId {
		return nil, errno.SelfReferenceErr
	}

	existing, err := db.GetSubscription(s.ctx, subscriberId, channelId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to look up subscription: %v", err)
		return nil, errno.UpstreamErr
	}

	if existing != nil {
		removed, err := db.DeleteSubscription(s.ctx, subscriberId, channelId)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "Failed to delete subscription: %v", err)
			return nil, errno.UpstreamErr
		}
		if !removed {
			return &ToggleResult{Action: ToggleRemoved}, nil
		}
		return &ToggleResult{Action: ToggleRemoved, Fact: existing}, nil
	}

	sub := &model.Subscription{
		SubscriptionId: utils.GenerateEntityID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      time.Now(),
	}
	inserted, err := db.CreateSubscription(s.ctx, sub)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to create subscription: %v", err)
		return nil, errno.UpstreamErr
	}
	if !inserted {
		// concurrent duplicate insert suppressed by the unique index
		return &ToggleResult{Action: ToggleAdded}, nil
	}
	return &ToggleResult{Action: ToggleAdded, Fact: sub}, nil
}
