package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() IClient {
	return &HTTPClient{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

func (c *HTTPClient) DoHTTPRequest(ctx context.Context, requestParam *RequestParam) error {
	if requestParam == nil {
		return errors.New("request param is nil")
	}

	if requestParam.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, requestParam.Timeout)
		defer cancel()
	}

	var bodyReader io.Reader
	switch body := requestParam.Body.(type) {
	case nil:
	case io.Reader:
		bodyReader = body
	default:
		// 其余类型按 JSON 序列化
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, requestParam.Method, requestParam.RequestURI, bodyReader)
	if err != nil {
		return err
	}
	for k, v := range requestParam.Header {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	reader := io.Reader(resp.Body)
	if requestParam.MaxBytes > 0 {
		reader = io.LimitReader(resp.Body, requestParam.MaxBytes+1)
	}
	respBody, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if requestParam.MaxBytes > 0 && int64(len(respBody)) > requestParam.MaxBytes {
		return fmt.Errorf("response body exceeds %d bytes", requestParam.MaxBytes)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("HTTP request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	switch out := requestParam.Response.(type) {
	case nil:
	case *bytes.Buffer:
		_, _ = out.Write(respBody)
	default:
		if len(respBody) > 0 {
			if err := json.Unmarshal(respBody, out); err != nil {
				return err
			}
		}
	}

	return nil
}
