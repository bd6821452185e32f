package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnexpectedEnvelopeError รูปแบบ response ที่ normalize ไม่ได้
// ต้องพังดัง ๆ ไม่เงียบ ๆ คืน list ว่าง
type UnexpectedEnvelopeError struct {
	Endpoint string
	Snippet  string
}

func (e *UnexpectedEnvelopeError) Error() string {
	return fmt.Sprintf("unexpected response shape from %s: %s", e.Endpoint, e.Snippet)
}

// ListEnvelope รูป canonical ของ list response หลัง normalize
type ListEnvelope struct {
	Items      json.RawMessage
	Message    string
	Total      int
	Page       int
	TotalPages int
	// HasMeta จริงเมื่อ upstream ส่ง pagination meta มาเอง
	HasMeta bool
}

// upstream ตอบ list ได้หลายทรง:
//   {success, data: [...], message}
//   [...] เพียว ๆ
//   {results: [...]}
//   {coupons: [...], total, page, totalPages}
type rawListEnvelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Results json.RawMessage `json:"results"`
	Coupons json.RawMessage `json:"coupons"`
	Total   int             `json:"total"`
	Page    int             `json:"page"`
	Pages   int             `json:"totalPages"`
}

// DecodeList normalize list response ทุกทรงเป็น ListEnvelope เดียว
func DecodeList(endpoint string, raw []byte) (*ListEnvelope, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: "<empty body>"}
	}

	// bare array
	if trimmed[0] == '[' {
		return &ListEnvelope{Items: trimmed}, nil
	}

	var env rawListEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(trimmed)}
	}

	var items json.RawMessage
	switch {
	case isArray(env.Data):
		items = env.Data
	case isArray(env.Results):
		items = env.Results
	case isArray(env.Coupons):
		items = env.Coupons
	}

	if items != nil {
		return &ListEnvelope{
			Items:      items,
			Message:    env.Message,
			Total:      env.Total,
			Page:       env.Page,
			TotalPages: env.Pages,
			HasMeta:    env.Total > 0 || env.Pages > 0,
		}, nil
	}

	return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(trimmed)}
}

// DecodeObject แกะ entity เดี่ยว — รับทั้ง {success,data:{...}} และ object เพียว ๆ
func DecodeObject(endpoint string, raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(trimmed)}
	}

	var env struct {
		Success *bool           `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, &UnexpectedEnvelopeError{Endpoint: endpoint, Snippet: snippet(trimmed)}
	}

	if isObject(env.Data) {
		return env.Data, nil
	}
	return trimmed, nil
}

func isArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func snippet(raw []byte) string {
	const max = 120
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
