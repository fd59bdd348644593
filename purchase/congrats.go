package purchase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/models"
)

const defaultCongratsTimeout = 10 * time.Second

type congratsRequest struct {
	BuilderID string `json:"builderId"`
}

// HTTPCongratsRefresher asks the image service to regenerate a builder's
// congratulations card. An empty URL disables it.
type HTTPCongratsRefresher struct {
	url    string
	client *http.Client
}

var _ CongratsRefresher = &HTTPCongratsRefresher{}

func (c *HTTPCongratsRefresher) RefreshCongratsImage(ctx context.Context, builderID string) error {
	if c.url == "" {
		log.WithField("builder_id", builderID).Debug("[CONGRATS] Refresh disabled")
		return nil
	}

	body, err := json.Marshal(congratsRequest{BuilderID: builderID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("congrats refresh returned status %d", res.StatusCode)
	}
	return nil
}

func NewCongratsRefresher(config models.CongratsConfig) *HTTPCongratsRefresher {
	timeout := defaultCongratsTimeout
	if config.TimeoutMillis > 0 {
		timeout = time.Duration(config.TimeoutMillis) * time.Millisecond
	}
	return &HTTPCongratsRefresher{
		url:    config.RefreshURL,
		client: &http.Client{Timeout: timeout},
	}
}
