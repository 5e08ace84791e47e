package service

import (
	"context"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	ToggleAdded   = "added"
	ToggleRemoved = "removed"
)

// ToggleResult reports which way a toggle went and the fact it touched.
type ToggleResult struct {
	Action string      `json:"action"`
	Fact   *model.Like `json:"fact,omitempty"`
}

type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// ToggleLike creates the like fact if absent and removes it if present. The
// read-then-act pair is not atomic; both branches tolerate losing a race to a
// concurrent toggle on the same tuple and report the state they left behind.
func (s *LikeActionService) ToggleLike(userId int64, targetKind string, targetId int64) (*ToggleResult, error) {
	if !utils.ValidID(userId) || !utils.ValidID(targetId) {
		return nil, errno.InvalidIdentifierErr
	}
	if !model.ValidLikeTarget(targetKind) {
		return nil, errno.ParamErr
	}

	existing, err := db.GetLike(s.ctx, userId, targetKind, targetId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to look up like fact: %v", err)
		return nil, errno.UpstreamErr
	}

	if existing != nil {
		removed, err := db.DeleteLike(s.ctx, userId, targetKind, targetId)
		if err != nil {
			hlog.CtxErrorf(s.ctx, "Failed to delete like fact: %v", err)
			return nil, errno.UpstreamErr
		}
		if !removed {
			// a concurrent toggle got there first; the fact is gone either way
			return &ToggleResult{Action: ToggleRemoved}, nil
		}
		return &ToggleResult{Action: ToggleRemoved, Fact: existing}, nil
	}

	like := &model.Like{
		LikeId:     utils.GenerateEntityID(),
		UserId:     userId,
		TargetKind: targetKind,
		TargetId:   targetId,
		CreatedAt:  time.Now(),
	}
	inserted, err := db.CreateLike(s.ctx, like)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to create like fact: %v", err)
		return nil, errno.UpstreamErr
	}
	if !inserted {
		// unique index suppressed a duplicate insert; treat as already added
		return &ToggleResult{Action: ToggleAdded}, nil
	}
	return &ToggleResult{Action: ToggleAdded, Fact: like}, nil
}
