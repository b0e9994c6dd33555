package structs

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// 表單送出的原始值，不做數值轉換直接送給 predictor
type VitalsInput struct {
	Age      string `json:"age" form:"age"`
	Chol     string `json:"chol" form:"chol"`
	Trestbps string `json:"trestbps" form:"trestbps"`
}

// UnmarshalJSON accepts strings or numbers and keeps the raw text of numbers.
func (v *VitalsInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Age      json.RawMessage `json:"age"`
		Chol     json.RawMessage `json:"chol"`
		Trestbps json.RawMessage `json:"trestbps"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := []struct {
		name string
		raw  json.RawMessage
		dst  *string
	}{
		{"age", raw.Age, &v.Age},
		{"chol", raw.Chol, &v.Chol},
		{"trestbps", raw.Trestbps, &v.Trestbps},
	}
	for _, f := range fields {
		text, err := rawText(f.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = text
	}
	return nil
}

func rawText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	switch raw[0] {
	case '"':
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", err
		}
		return n.String(), nil
	}
	return "", fmt.Errorf("expected string or number, got %s", raw)
}

// predictor 回傳，result 與 error 擇一
type PredictionResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type DietResponse struct {
	Age  int    `json:"age"`
	Diet string `json:"diet"`
}
