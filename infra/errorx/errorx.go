// Package errorx 带错误码的错误类型，错误链上保留调用栈。
package errorx

import (
	"fmt"

	"libstat/infra/errorx/errCode"

	"github.com/cockroachdb/errors"
)

type Error struct {
	Code  errCode.ErrCode
	Msg   string
	cause error
}

// New 创建错误，cause 记录调用位置的栈
func New(code errCode.ErrCode, msg string) *Error {
	return &Error{Code: code, Msg: msg, cause: errors.NewWithDepth(1, msg)}
}

func Newf(code errCode.ErrCode, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Code: code, Msg: msg, cause: errors.NewWithDepth(1, msg)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is 同错误码即视为同一类错误
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf 取错误链上第一个 *Error 的错误码
func CodeOf(err error) errCode.ErrCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.UNKNOWN
}

func HasCode(err error, code errCode.ErrCode) bool {
	return err != nil && CodeOf(err) == code
}
