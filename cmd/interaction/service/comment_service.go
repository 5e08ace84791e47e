package service

import (
	"context"
	"strings"
	"time"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/guard"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (s *CommentService) CreateComment(userId, videoId int64, content string) (*model.Comment, error) {
	if !utils.ValidID(userId) || !utils.ValidID(videoId) {
		return nil, errno.InvalidIdentifierErr
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ValidationFailedErr
	}

	now := time.Now()
	comment := &model.Comment{
		CommentId: utils.GenerateEntityID(),
		UserId:    userId,
		VideoId:   videoId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to create comment: %v", err)
		return nil, errno.UpstreamErr
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(userId, commentId int64, content string) (*model.Comment, error) {
	if !utils.ValidID(userId) || !utils.ValidID(commentId) {
		return nil, errno.InvalidIdentifierErr
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ValidationFailedErr
	}

	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load comment: %v", err)
		return nil, errno.UpstreamErr
	}
	if err := guard.AssertOwner(comment, userId); err != nil {
		return nil, err
	}

	if err := db.UpdateCommentContent(s.ctx, commentId, content); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to update comment: %v", err)
		return nil, errno.UpstreamErr
	}
	comment.Content = content
	return comment, nil
}

func (s *CommentService) DeleteComment(userId, commentId int64) error {
	if !utils.ValidID(userId) || !utils.ValidID(commentId) {
		return errno.InvalidIdentifierErr
	}

	comment, err := db.GetCommentInfo(s.ctx, commentId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load comment: %v", err)
		return errno.UpstreamErr
	}
	if err := guard.AssertOwner(comment, userId); err != nil {
		return err
	}

	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to delete comment: %v", err)
		return errno.UpstreamErr
	}
	return nil
}
