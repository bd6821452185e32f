package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"elfateh-admin/pkg/logger"
)

// TokenSource คืน bearer token ปัจจุบัน (ว่าง = ยังไม่ล็อกอิน)
type TokenSource func(ctx context.Context) string

// UnauthorizedHook ถูกเรียกเมื่อ upstream ตอบ 401 จาก endpoint ที่ไม่ใช่ auth
type UnauthorizedHook func(ctx context.Context)

// Client ห่อ http.Client สำหรับยิง upstream commerce API
//
// ทุก request แนบ Content-Type/Accept เป็น JSON และแนบ Bearer token
// เมื่อ TokenSource มีค่า ใช้ timeout default ของ http.Client ไม่ retry
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    TokenSource
	onUnauthorized UnauthorizedHook
}

// endpoint ฝั่ง auth ไม่ต้อง clear session ตอนเจอ 401
// (รหัสผ่านผิดไม่ควรเตะ admin ที่ล็อกอินอยู่ออก)
var authExemptPaths = map[string]bool{
	"/auth/login":        true,
	"/auth/create-admin": true,
}

func NewClient(baseURL string, tokenSource TokenSource, onUnauthorized UnauthorizedHook) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{},
		tokenSource:    tokenSource,
		onUnauthorized: onUnauthorized,
	}
}

// StatusError ตอบกลับที่ไม่ใช่ 2xx
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned %d", e.Endpoint, e.StatusCode)
}

// IsNotFound ตรวจว่า error คือ 404 จาก upstream
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

func (c *Client) Get(ctx context.Context, endpoint string, query map[string]string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, query, nil)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, body)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, endpoint, nil, body)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, endpoint, nil, body)
}

func (c *Client) Delete(ctx context.Context, endpoint string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, query map[string]string, body any) ([]byte, error) {
	u := c.baseURL + endpoint

	// ข้าม query param ที่ค่าว่าง
	if len(query) > 0 {
		values := url.Values{}
		for k, v := range query {
			if v == "" {
				continue
			}
			values.Set(k, v)
		}
		if encoded := values.Encode(); encoded != "" {
			u += "?" + encoded
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !authExemptPaths[pathOnly(endpoint)] {
		// session หมดอายุ — เคลียร์ของที่เก็บไว้ แต่ error ยังส่งต่อให้ caller
		logger.WarnContext(ctx, "Upstream returned 401, clearing stored session", "endpoint", endpoint)
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return raw, &StatusError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: raw}
	}

	return raw, nil
}

func pathOnly(endpoint string) string {
	if i := strings.IndexByte(endpoint, '?'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}
