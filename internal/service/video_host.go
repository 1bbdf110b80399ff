package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// VideoHostClient talks to the video hosting service. Uploaded videos are
// ingested by URL; the host returns an asset id (for lifecycle operations)
// and a playback id (for the player).
type VideoHostClient interface {
	CreateAsset(ctx context.Context, videoURL string) (*VideoAssetInfo, error)
	DeleteAsset(ctx context.Context, assetID string) error
}

type VideoAssetInfo struct {
	AssetID    string `json:"asset_id"`
	PlaybackID string `json:"playback_id"`
}

type videoHostClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  zerolog.Logger
}

// NewVideoHostClient creates a VideoHostClient against the configured base URL.
func NewVideoHostClient(baseURL, token string, logger zerolog.Logger) VideoHostClient {
	return &videoHostClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With().Str("service", "VideoHostClient").Logger(),
	}
}

type createAssetRequest struct {
	Input string `json:"input"`
}

func (c *videoHostClient) CreateAsset(ctx context.Context, videoURL string) (*VideoAssetInfo, error) {
	jsonBody, err := json.Marshal(createAssetRequest{Input: videoURL})
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	url := fmt.Sprintf("%s/assets", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request to video host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, c.errorFromResponse(resp)
	}

	var info VideoAssetInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decoding video host response: %w", err)
	}
	if info.AssetID == "" {
		return nil, fmt.Errorf("video host returned no asset id")
	}
	return &info, nil
}

func (c *videoHostClient) DeleteAsset(ctx context.Context, assetID string) error {
	url := fmt.Sprintf("%s/assets/%s", c.baseURL, assetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("making request to video host: %w", err)
	}
	defer resp.Body.Close()

	// A 404 from the host means the asset is already gone; treat as success
	// so a retried delete saga can make progress.
	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn().Str("asset_id", assetID).Msg("Asset already absent at video host")
		return nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.errorFromResponse(resp)
	}
	return nil
}

func (c *videoHostClient) errorFromResponse(resp *http.Response) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		c.logger.Warn().Err(readErr).Int("status_code", resp.StatusCode).Msg("Failed to read error body from video host")
		return fmt.Errorf("video host returned status %d", resp.StatusCode)
	}

	errorMsg := string(bodyBytes)
	c.logger.Error().
		Int("status_code", resp.StatusCode).
		Str("error_body", errorMsg).
		Msg("Video host returned error")

	return fmt.Errorf("video host returned status %d: %s", resp.StatusCode, errorMsg)
}
