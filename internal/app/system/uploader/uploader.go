// Package uploader sends images to the configured media host and returns the
// hosted URL. Admin forms for team photos, event covers, and program images
// go through it instead of storing binaries in the database.
package uploader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImageBytes is the largest image accepted from an admin form.
const MaxImageBytes = 10 << 20 // 10 MiB

// ImageUploader stores an image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// Cloudinary uploads images using an unsigned upload preset.
type Cloudinary struct {
	cloudName string
	preset    string
	baseURL   string
	client    *http.Client
	log       *zap.Logger
}

// Option configures a Cloudinary uploader.
type Option func(*Cloudinary)

// WithBaseURL overrides the API host. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Cloudinary) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Cloudinary) { c.client = hc }
}

// NewCloudinary builds an uploader for the given cloud and unsigned preset.
func NewCloudinary(cloudName, preset string, log *zap.Logger, opts ...Option) *Cloudinary {
	c := &Cloudinary{
		cloudName: cloudName,
		preset:    preset,
		baseURL:   "https://api.cloudinary.com",
		client:    &http.Client{Timeout: 30 * time.Second},
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts the image as multipart form data and returns the secure URL.
// Each upload gets a fresh public ID so re-uploading the same filename never
// overwrites an earlier image that a published page may still reference.
func (c *Cloudinary) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	publicID := uuid.NewString()
	if ext := path.Ext(filename); ext != "" {
		filename = publicID + ext
	} else {
		filename = publicID
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, io.LimitReader(content, MaxImageBytes+1)); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if body.Len() > MaxImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}
	if err := mw.WriteField("upload_preset", c.preset); err != nil {
		return "", fmt.Errorf("write preset field: %w", err)
	}
	if err := mw.WriteField("public_id", publicID); err != nil {
		return "", fmt.Errorf("write public_id field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalize form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := parsed.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		c.log.Warn("image upload rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", msg))
		return "", fmt.Errorf("upload rejected: %s", msg)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	c.log.Info("image uploaded",
		zap.String("public_id", publicID),
		zap.String("url", parsed.SecureURL))
	return parsed.SecureURL, nil
}
