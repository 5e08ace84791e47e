package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode               = 0
	ServiceErrCode            = 10001
	ParamErrCode              = 10002
	InvalidIdentifierErrCode  = 10003
	RecordNotFoundErrCode     = 10004
	ForbiddenErrCode          = 10005
	ValidationFailedErrCode   = 10006
	SelfReferenceErrCode      = 10007
	UpstreamUnavailableCode   = 10008
	TokenInvailedErrCode      = 10009
	RecordAlreadyExistErrCode = 10010
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success    = NewErrNo(SuccessCode, "Success")
	ServiceErr = NewErrNo(ServiceErrCode, "Service is unable to handle this request")
	ParamErr   = NewErrNo(ParamErrCode, "Wrong parameter has been given")

	InvalidIdentifierErr = NewErrNo(InvalidIdentifierErrCode, "Identifier is malformed")
	RecordNotFoundErr    = NewErrNo(RecordNotFoundErrCode, "Record does not exist")
	ForbiddenErr         = NewErrNo(ForbiddenErrCode, "No permission to operate this record")
	ValidationFailedErr  = NewErrNo(ValidationFailedErrCode, "Required field is missing or empty")
	SelfReferenceErr     = NewErrNo(SelfReferenceErrCode, "You cannot subscribe to yourself")
	UpstreamErr          = NewErrNo(UpstreamUnavailableCode, "Upstream service is unavailable")
	TokenInvailedErr     = NewErrNo(TokenInvailedErrCode, "Token is invalid")
)

// ConvertErr converts an error to an ErrNo so the handler layer always has a
// stable code and message to put into the response envelope.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
