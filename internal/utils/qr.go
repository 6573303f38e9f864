package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// MakeQRCodeBase64 为给定 URL 生成 PNG 二维码并返回 base64 字符串
func MakeQRCodeBase64(url string, size int) (string, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
