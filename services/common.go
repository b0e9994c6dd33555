package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// HttpRequest 送出 JSON 請求，回傳 status code 與 body
func HttpRequest(ctx context.Context, client *http.Client, method, url string, header map[string]string, data interface{}) (int, []byte, error) {

	var body io.Reader

	// 序列化參數
	if data != nil {
		requestBody, err := json.Marshal(data)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewBuffer(requestBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, err
	}

	if client == nil {
		client = http.DefaultClient
	}

	req.Header.Set("Content-Type", "application/json")
	for key, element := range header {
		req.Header.Set(key, element)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	// 讀取 body
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}
