package bizerror

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// ErrInvalidField reports a validation failure on a single named field.
type ErrInvalidField struct {
	Field   string
	Message string
}

func (e *ErrInvalidField) Error() string {
	return e.Field + ": " + e.Message
}
func (e *ErrInvalidField) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.invalid_field", Message: e.Message, Data: e.Field}
}

type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}
func (e *ErrConflict) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusConflict, Code: "common.conflict", Message: e.Message, Data: nil}
}

// ErrWorkPlaceNotApproved rejects worktime logging against a workplace
// which is not currently Approved.
type ErrWorkPlaceNotApproved struct {
}

func (e *ErrWorkPlaceNotApproved) Error() string {
	return "this action is allowed only for approved workplaces"
}
func (e *ErrWorkPlaceNotApproved) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "workplace.not_approved", Message: e.Error(), Data: nil}
}
