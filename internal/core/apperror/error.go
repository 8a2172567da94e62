package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类，决定对外的 HTTP 状态
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindInvalid
	KindInvalidState
	KindNotFound
)

var kindCodes = map[Kind]string{
	KindInternal:        "INTERNAL_ERROR",
	KindUnauthenticated: "UNAUTHORIZED",
	KindForbidden:       "FORBIDDEN",
	KindInvalid:         "INVALID_INPUT",
	KindInvalidState:    "INVALID_STATE",
	KindNotFound:        "NOT_FOUND",
}

func (k Kind) String() string { return kindCodes[k] }

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap 保留原始错误，errors.Is 仍可命中 err
func Wrap(err error, kind Kind, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf 取链上第一个 *Error 的分类；非 apperror 一律视为内部错误
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// Message 对外可见的消息；内部错误不泄露细节
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindInternal {
		return ae.Msg
	}
	return http.StatusText(http.StatusInternalServerError)
}

// Status 分类到 HTTP 状态码。不存在与已处理统一为 400，避免泄露记录是否存在
func Status(kind Kind) int {
	switch kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalid, KindInvalidState, KindNotFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
