package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100

	MaxTitleLength   = 200
	MaxContentLength = 2000

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
	DefaultSortBy = "created_at"
)

const (
	VideoBucket = "videos"
	ImageBucket = "pictures"
)
