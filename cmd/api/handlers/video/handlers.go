package handlers

import (
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type PublishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type UpdateVideoParam struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
}

type FeedListParam struct {
	Query    string `query:"query"`
	UserId   int64  `query:"user_id"`
	SortBy   string `query:"sort_by"`
	SortType string `query:"sort_type"`
	PageNum  int64  `query:"page"`
	PageSize int64  `query:"limit"`
}

type PagedData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int64       `json:"page"`
	Limit int64       `json:"limit"`
}
