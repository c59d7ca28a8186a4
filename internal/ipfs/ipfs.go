// Package ipfs uploads files and JSON documents to Pinata and resolves gateway URLs.
package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/metrics"
)

var log = logrus.WithField("package", "ipfs")

const (
	// DefaultAPIURL ...
	DefaultAPIURL = "https://api.pinata.cloud"

	fileTimeout = 60 * time.Second
	jsonTimeout = 30 * time.Second
)

var (
	// ErrTooLarge is returned when payload exceeds upload limit.
	ErrTooLarge = errors.New("payload is too large")
	// ErrNotConfigured is returned when no Pinata credentials are set.
	ErrNotConfigured = errors.New("pinata credentials are not configured")
)

// Config ...
type Config struct {
	APIURL    string
	JWT       string
	APIKey    string
	SecretKey string
	Gateway   string
}

// Upload is a result of pinning.
type Upload struct {
	IPFSHash  string    `json:"ipfsHash"`
	IPFSURL   string    `json:"ipfsUrl"`
	Size      int64     `json:"size"`
	Timestamp time.Time `json:"timestamp"`
}

// Client is a Pinata client.
type Client struct {
	c   *http.Client
	cfg Config
}

// New creates new instance of Client.
func New(cfg Config, c *http.Client) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Gateway == "" {
		cfg.Gateway = entities.DefaultIPFSGateway
	}
	if c == nil {
		c = http.DefaultClient
	}

	return &Client{c: c, cfg: cfg}
}

// Configured returns true if credentials are set.
func (c *Client) Configured() bool {
	return c.cfg.JWT != "" || (c.cfg.APIKey != "" && c.cfg.SecretKey != "")
}

// UploadFile pins file. Size is checked before any network call, negative size means unknown.
func (c *Client) UploadFile(ctx context.Context, name string, r io.Reader, size int64, metadata map[string]string) (*Upload, error) {
	if size > entities.MaxFileUploadSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrTooLarge, size, entities.MaxFileUploadSize)
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	meta, err := pinataMetadata(name, metadata)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, fileTimeout)
	defer cancel()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	lr := &limitedReader{r: r, left: entities.MaxFileUploadSize}

	go func() {
		pw.CloseWithError(func() error {
			fw, err := mw.CreateFormFile("file", name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(fw, lr); err != nil {
				return err
			}
			if err := mw.WriteField("pinataMetadata", meta); err != nil {
				return err
			}
			return mw.Close()
		}())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/pinning/pinFileToIPFS", pr)
	if err != nil {
		pr.Close()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	u, err := c.do(req)
	if err != nil && lr.exceeded.Load() {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooLarge, entities.MaxFileUploadSize)
	}

	return u, err
}

// UploadJSON pins JSON document.
func (c *Client) UploadJSON(ctx context.Context, name string, v interface{}) (*Upload, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content: %w", err)
	}
	if len(content) > entities.MaxJSONUploadSize {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrTooLarge, len(content), entities.MaxJSONUploadSize)
	}
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := sjson.SetRawBytes([]byte(`{}`), "pinataContent", content)
	if err != nil {
		return nil, fmt.Errorf("failed to build body: %w", err)
	}
	if body, err = sjson.SetBytes(body, "pinataMetadata.name", name); err != nil {
		return nil, fmt.Errorf("failed to build body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, jsonTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/pinning/pinJSONToIPFS", strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Upload, error) {
	if c.cfg.JWT != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)
	} else {
		req.Header.Set("pinata_api_key", c.cfg.APIKey)
		req.Header.Set("pinata_secret_api_key", c.cfg.SecretKey)
	}

	resp, err := c.c.Do(req)
	if err != nil {
		metrics.Upstream("pinata", err)
		return nil, fmt.Errorf("failed to upload: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		metrics.Upstream("pinata", err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("upload failed: %s: %s", resp.Status, strings.TrimSpace(string(data)))
		metrics.Upstream("pinata", err)
		return nil, err
	}
	metrics.Upstream("pinata", nil)

	res := gjson.ParseBytes(data)
	hash := res.Get("IpfsHash").String()
	if hash == "" {
		return nil, fmt.Errorf("upload failed: no hash in response %s", data)
	}

	u := Upload{
		IPFSHash:  hash,
		IPFSURL:   c.GetIPFSURL(hash),
		Size:      res.Get("PinSize").Int(),
		Timestamp: time.Now().UTC(),
	}
	if ts := res.Get("Timestamp"); ts.Exists() {
		if t, err := time.Parse(time.RFC3339, ts.String()); err == nil {
			u.Timestamp = t.UTC()
		}
	}

	log.WithField("hash", u.IPFSHash).WithField("size", u.Size).Info("pinned to ipfs")

	return &u, nil
}

// GetIPFSURL resolves hash or URL onto configured gateway.
func (c *Client) GetIPFSURL(hashOrURL string) string {
	return GetIPFSURL(c.cfg.Gateway, hashOrURL)
}

// GetIPFSURL resolves hash or URL onto gateway. Absolute http(s) URLs are returned as is,
// so GetIPFSURL(g, GetIPFSURL(g, x)) == GetIPFSURL(g, x).
func GetIPFSURL(gateway, hashOrURL string) string {
	s := strings.TrimSpace(hashOrURL)
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}

	if strings.HasPrefix(lower, "ipfs://") {
		s = s[len("ipfs://"):]
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "/"), "ipfs/")

	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}

	return gateway + s
}

func pinataMetadata(name string, kv map[string]string) (string, error) {
	meta, err := sjson.Set(`{}`, "name", name)
	if err != nil {
		return "", fmt.Errorf("failed to build metadata: %w", err)
	}
	if len(kv) > 0 {
		if meta, err = sjson.Set(meta, "keyvalues", kv); err != nil {
			return "", fmt.Errorf("failed to build metadata: %w", err)
		}
	}
	return meta, nil
}

// limitedReader fails when more than left bytes are read.
type limitedReader struct {
	r        io.Reader
	left     int64
	exceeded atomic.Bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		l.exceeded.Store(true)
		return n, ErrTooLarge
	}
	return n, err
}
