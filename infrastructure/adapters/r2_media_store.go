package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ThoughtFull-World/tf-dreams/application/ports/outbound"
	"github.com/ThoughtFull-World/tf-dreams/config"
	"github.com/ThoughtFull-World/tf-dreams/domain"
)

type r2MediaStore struct {
	logger outbound.LoggerPort
	conf   *config.R2Config
	client *http.Client
	// now is swappable so signing can be tested against a fixed clock.
	now func() time.Time
}

// NewR2MediaStore uploads to a Cloudflare R2 bucket over the S3-compatible
// API, signing each request itself instead of pulling in a vendor SDK.
func NewR2MediaStore(conf *config.R2Config, logger outbound.LoggerPort) outbound.MediaStorePort {
	return &r2MediaStore{
		logger: logger,
		conf:   conf,
		client: &http.Client{},
		now:    time.Now,
	}
}

func (s *r2MediaStore) Upload(ctx context.Context, req outbound.UploadRequest) (string, error) {
	host := fmt.Sprintf("%s.%s.r2.cloudflarestorage.com", s.conf.BucketName, s.conf.AccountID)

	signed := signPutRequest(host, req.Key, s.conf.AccessKeyID, s.conf.SecretAccessKey, req.Payload, s.now())

	url := fmt.Sprintf("https://%s/%s", host, req.Key)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(req.Payload))
	if err != nil {
		return "", err
	}
	httpReq.Host = host
	httpReq.Header.Set("x-amz-date", signed.AmzDate)
	httpReq.Header.Set("x-amz-content-sha256", signed.PayloadHash)
	httpReq.Header.Set("Authorization", signed.Authorization)
	httpReq.Header.Set("Content-Type", req.ContentType)

	res, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to send the upload request", map[string]interface{}{
			"key": req.Key,
		})
		return "", err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			s.logger.Error(err, "Failed to close the upload response body")
		}
	}(res.Body)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		uploadErr := &domain.UploadError{StatusCode: res.StatusCode, Body: string(body)}
		s.logger.ErrorWithFields(uploadErr, "Object store rejected the upload", map[string]interface{}{
			"key":    req.Key,
			"status": res.StatusCode,
		})
		return "", uploadErr
	}

	publicUrl := fmt.Sprintf("https://%s/%s", host, req.Key)
	if s.conf.PublicUrl != "" {
		publicUrl = fmt.Sprintf("%s/%s", s.conf.PublicUrl, req.Key)
	}
	s.logger.DebugWithFields("Uploaded object", map[string]interface{}{
		"key": req.Key,
		"url": publicUrl,
	})

	return publicUrl, nil
}
