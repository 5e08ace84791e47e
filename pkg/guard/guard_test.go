package guard

import (
	"testing"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
	"github.com/stretchr/testify/require"
)

func TestAssertOwner(t *testing.T) {
	comment := &model.Comment{CommentId: 1, UserId: 10}

	require.NoError(t, AssertOwner(comment, 10))
	require.ErrorIs(t, AssertOwner(comment, 11), errno.ForbiddenErr)
	require.ErrorIs(t, AssertOwner(nil, 10), errno.RecordNotFoundErr)
}

func TestAssertOwnerTypedNil(t *testing.T) {
	// a nil *Comment arriving through the interface is still "not found"
	var comment *model.Comment
	require.ErrorIs(t, AssertOwner(comment, 10), errno.RecordNotFoundErr)

	var video *model.Video
	require.ErrorIs(t, AssertOwner(video, 10), errno.RecordNotFoundErr)
}
