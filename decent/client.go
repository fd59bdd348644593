package decent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/dan13ram/scout-mint-validator/metrics"
	"github.com/dan13ram/scout-mint-validator/models"
)

type Client interface {
	GetStatus(ctx context.Context, chainID int64, txHash string) (*StatusResponse, error)
}

type httpClient struct {
	apiURL string
	apiKey string
	client *http.Client
	rl     ratelimit.Limiter
}

var _ Client = &httpClient{}

func (c *httpClient) GetStatus(ctx context.Context, chainID int64, txHash string) (res *StatusResponse, err error) {
	started := time.Now()
	defer func() { metrics.ObserveDecentRequest("get_status", err, started) }()

	query := url.Values{}
	query.Set("chainId", strconv.FormatInt(chainID, 10))
	query.Set("txHash", txHash)
	endpoint := c.apiURL + "/getStatus?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.rl.Take()

	log.WithFields(log.Fields{"chain_id": chainID, "tx_hash": txHash}).Debug("[DECENT] Fetching transaction status")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("status request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &StatusResponse{Status: StatusNotFound}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status request returned %s", resp.Status)
	}

	var result StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &result, nil
}

func NewClient(config models.DecentConfig) Client {
	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	return &httpClient{
		apiURL: strings.TrimRight(config.APIURL, "/"),
		apiKey: config.APIKey,
		client: &http.Client{Timeout: time.Duration(config.TimeoutMillis) * time.Millisecond},
		rl:     ratelimit.New(rps),
	}
}
