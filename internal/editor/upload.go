package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Uploader runs the two-phase image upload: sign the timestamp through the
// content API, then push the file straight to the object store with the
// signature and public credentials. The file itself never passes through the
// content API; only the resulting URL does.
type Uploader struct {
	client *Client
	http   *retryablehttp.Client

	cloudName string
	apiKey    string

	// uploadURL overrides the object store endpoint, for tests.
	uploadURL string
	now       func() time.Time
}

func NewUploader(client *Client, cloudName, apiKey string) *Uploader {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 2
	httpClient.Logger = nil

	return &Uploader{
		client:    client,
		http:      httpClient,
		cloudName: cloudName,
		apiKey:    apiKey,
		now:       time.Now,
	}
}

func (u *Uploader) endpoint() string {
	if u.uploadURL != "" {
		return u.uploadURL
	}
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", u.cloudName)
}

// Upload signs, pushes and returns the secure URL of the stored image.
func (u *Uploader) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	timestamp := u.now().Unix()

	signature, err := u.client.SignUpload(ctx, map[string]any{"timestamp": timestamp})
	if err != nil {
		return "", fmt.Errorf("sign upload: %w", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := form.WriteField("api_key", u.apiKey); err != nil {
		return "", err
	}
	if err := form.WriteField("timestamp", strconv.FormatInt(timestamp, 10)); err != nil {
		return "", err
	}
	if err := form.WriteField("signature", signature); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u.endpoint(), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		SecureURL string `json:"secure_url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response (status %d): %w", resp.StatusCode, err)
	}
	if result.SecureURL == "" {
		if result.Error.Message != "" {
			return "", fmt.Errorf("upload rejected: %s", result.Error.Message)
		}
		return "", fmt.Errorf("upload rejected (status %d)", resp.StatusCode)
	}
	return result.SecureURL, nil
}
