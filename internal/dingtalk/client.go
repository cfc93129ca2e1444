package dingtalk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Token valid 7200 detik; refresh 5 menit sebelum expired
// supaya token tidak keburu mati di tengah request.
const tokenRefreshBuffer = 5 * time.Minute

// APIError dikembalikan saat DingTalk menjawab dengan errcode != 0.
type APIError struct {
	ErrCode int
	ErrMsg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("DingTalk API error %d: %s", e.ErrCode, e.ErrMsg)
}

// Envelope standar DingTalk: {errcode, errmsg, ...}.
// Embed struct ini di setiap response type.
type BaseResponse struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

func (r *BaseResponse) Err() error {
	if r.ErrCode != 0 {
		return &APIError{ErrCode: r.ErrCode, ErrMsg: r.ErrMsg}
	}
	return nil
}

// Response dipenuhi oleh semua struct yang embed BaseResponse.
type Response interface {
	Err() error
}

// Client HTTP untuk open-platform API DingTalk.
// Satu instance dipakai bersama seluruh aplikasi agar cache token tunggal.
type Client struct {
	baseURL   string
	appKey    string
	appSecret string
	http      *http.Client

	mu             sync.Mutex
	accessToken    string
	tokenExpiresAt time.Time
}

func NewClient(baseURL, appKey, appSecret string) *Client {
	return &Client{
		baseURL:   baseURL,
		appKey:    appKey,
		appSecret: appSecret,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	BaseResponse
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetAccessToken mengembalikan token yang masih valid,
// refresh otomatis kalau sudah dekat expired.
func (c *Client) GetAccessToken() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiresAt.Add(-tokenRefreshBuffer)) {
		return c.accessToken, nil
	}
	return c.refreshToken()
}

// refreshToken hanya boleh dipanggil saat mutex sudah terkunci.
func (c *Client) refreshToken() (string, error) {
	params := url.Values{}
	params.Set("appkey", c.appKey)
	params.Set("appsecret", c.appSecret)

	resp, err := c.http.Get(c.baseURL + "/gettoken?" + params.Encode())
	if err != nil {
		return "", fmt.Errorf("gettoken: %w", err)
	}
	defer resp.Body.Close()

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode gettoken: %w", err)
	}
	if err := out.Err(); err != nil {
		return "", err
	}

	expiresIn := out.ExpiresIn
	if expiresIn == 0 {
		expiresIn = 7200
	}
	c.accessToken = out.AccessToken
	c.tokenExpiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)

	logrus.WithField("expires_in", expiresIn).Info("Access token DingTalk diperbarui")
	return c.accessToken, nil
}

// Post mengirim request POST berautentikasi lalu decode envelope ke out.
// Mengembalikan *APIError kalau errcode != 0.
func (c *Client) Post(path string, body interface{}, out Response) error {
	token, err := c.GetAccessToken()
	if err != nil {
		return err
	}

	if body == nil {
		body = map[string]interface{}{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body %s: %w", path, err)
	}

	endpoint := c.baseURL + path + "?access_token=" + url.QueryEscape(token)
	resp, err := c.http.Post(endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return out.Err()
}

// Get mengirim request GET berautentikasi lalu decode envelope ke out.
func (c *Client) Get(path string, params url.Values, out Response) error {
	token, err := c.GetAccessToken()
	if err != nil {
		return err
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("access_token", token)

	resp, err := c.http.Get(c.baseURL + path + "?" + params.Encode())
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response %s: %w", path, err)
	}
	return out.Err()
}
