package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind 区分三类抓取失败：实体不存在、上游错误、可降级的次要资源失败。
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindUpstream
	KindTransient
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUpstream:
		return "upstream"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// FetchError 携带状态码与可展示的消息，供错误卡片渲染。
type FetchError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error { return e.Err }

// NotFound 构造 404 类错误。
func NotFound(message string) *FetchError {
	if message == "" {
		message = "Resource not found"
	}
	return &FetchError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// Upstream 构造带状态码的上游错误。
func Upstream(status int, message string, err error) *FetchError {
	return &FetchError{Kind: KindUpstream, Status: status, Message: message, Err: err}
}

// Transient 将任意错误标记为可降级的次要资源失败。
func Transient(err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return &FetchError{Kind: KindTransient, Status: fe.Status, Message: fe.Message, Err: fe.Err}
	}
	return &FetchError{Kind: KindTransient, Err: err}
}

// AsFetchError 将任意 error 规整为 FetchError；未知错误视为 500 上游错误，
// 超时映射为 504。
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Upstream(http.StatusGatewayTimeout, "upstream request timed out", err)
	}
	return Upstream(http.StatusInternalServerError, err.Error(), err)
}

// IsNotFound 判断错误链中是否包含 KindNotFound。
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == KindNotFound
}

var errMissingValue = errors.New("value not available")
