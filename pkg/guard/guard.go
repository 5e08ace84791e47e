package guard

import (
	"reflect"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/errno"
)

// AssertOwner runs before every mutation of an owned entity. The entity is the
// result of a store lookup and may be a typed nil when the id resolved to
// nothing.
func AssertOwner(entity model.Owned, userId int64) error {
	if entity == nil || isNil(entity) {
		return errno.RecordNotFoundErr
	}
	if entity.OwnerID() != userId {
		return errno.ForbiddenErr
	}
	return nil
}

func isNil(entity model.Owned) bool {
	v := reflect.ValueOf(entity)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
