package service

import (
	"context"
	"strings"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/cmd/tweet/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/guard"
	"VideoTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if !utils.ValidID(userId) {
		return nil, errno.InvalidIdentifierErr
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ValidationFailedErr
	}

	now := time.Now()
	tweet := &model.Tweet{
		TweetId:   utils.GenerateEntityID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to create tweet: %v", err)
		return nil, errno.UpstreamErr
	}
	return tweet, nil
}

func (s *TweetService) UpdateTweet(userId, tweetId int64, content string) (*model.Tweet, error) {
	if !utils.ValidID(userId) || !utils.ValidID(tweetId) {
		return nil, errno.InvalidIdentifierErr
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errno.ValidationFailedErr
	}

	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load tweet: %v", err)
		return nil, errno.UpstreamErr
	}
	if err := guard.AssertOwner(tweet, userId); err != nil {
		return nil, err
	}

	if err := db.UpdateTweetContent(s.ctx, tweetId, content); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to update tweet: %v", err)
		return nil, errno.UpstreamErr
	}
	tweet.Content = content
	return tweet, nil
}

func (s *TweetService) DeleteTweet(userId, tweetId int64) error {
	if !utils.ValidID(userId) || !utils.ValidID(tweetId) {
		return errno.InvalidIdentifierErr
	}

	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to load tweet: %v", err)
		return errno.UpstreamErr
	}
	if err := guard.AssertOwner(tweet, userId); err != nil {
		return err
	}

	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to delete tweet: %v", err)
		return errno.UpstreamErr
	}
	return nil
}

// UserTweets lists a user's tweets, newest first.
func (s *TweetService) UserTweets(userId int64) ([]*model.Tweet, error) {
	if !utils.ValidID(userId) {
		return nil, errno.InvalidIdentifierErr
	}
	tweets, err := db.GetUserTweets(s.ctx, userId)
	if err != nil {
		hlog.CtxErrorf(s.ctx, "Failed to list tweets: %v", err)
		return nil, errno.UpstreamErr
	}
	return tweets, nil
}
