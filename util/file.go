package util

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	nhttp "github.com/chaos-io/cutout/util/http"
)

// maxImageBytes 单张图片下载上限
const maxImageBytes = 64 << 20

// DownloadImage 下载并解码图片
func DownloadImage(ctx context.Context, cli nhttp.IClient, url string) (image.Image, error) {
	buf := &bytes.Buffer{}
	reqParam := &nhttp.RequestParam{
		RequestURI: url,
		Method:     "GET",
		Response:   buf,
		MaxBytes:   maxImageBytes,
	}
	if err := cli.DoHTTPRequest(ctx, reqParam); err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// OpenImage 打开本地图片
func OpenImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(file)
	return img, err
}
