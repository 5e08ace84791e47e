package service

import (
	"context"

	"VideoTube.com/cmd/interaction/dal/db"
	"VideoTube.com/cmd/model"
	userdb "VideoTube.com/cmd/user/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type CommentListService struct {
	ctx context.Context
}

func NewCommentListService(ctx context.Context) *CommentListService {
	return &CommentListService{ctx: ctx}
}

// ListComments pages through a video's comments, newest first, each joined to
// its author's profile projection.
func (s *CommentListService) ListComments(videoId, pageNum, pageSize int64) ([]*model.CommentWithAuthor, int64, error) {
	if !utils.ValidID(videoId) {
		return nil, 0, errno.InvalidIdentifierErr
	}
	page := utils.NormalizePagination(pageNum, pageSize)

	comments, total, err := db.GetVideoCommentsPaged(s.ctx, videoId, page.Offset(), page.Limit())
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to page comments: %v", err)
		return nil, 0, errno.UpstreamErr
	}

	authorIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		authorIds = append(authorIds, c.UserId)
	}
	authors, err := userdb.GetUserLites(s.ctx, authorIds)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load comment authors: %v", err)
		return nil, 0, errno.UpstreamErr
	}

	rows := make([]*model.CommentWithAuthor, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, &model.CommentWithAuthor{Comment: c, Author: authors[c.UserId]})
	}
	return rows, total, nil
}
