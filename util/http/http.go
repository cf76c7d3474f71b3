package http

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/http.go -package=mocks . IClient
type IClient interface {
	DoHTTPRequest(ctx context.Context, requestParam *RequestParam) error
}

type RequestParam struct {
	RequestURI string
	Method     string
	Header     map[string]string
	Body       interface{}

	// Response 为 *bytes.Buffer 时原样写入响应字节（下载图片等
	// 二进制场景），其余非 nil 指针按 JSON 反序列化
	Response interface{}

	Timeout time.Duration
	// MaxBytes 响应体字节数上限，0 表示不限制
	MaxBytes int64
}
