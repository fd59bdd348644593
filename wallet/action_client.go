package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
)

const defaultActionTimeout = 30 * time.Second

type errorResponse struct {
	Error string `json:"error"`
}

// ActionClient calls the server's action endpoints on behalf of a scout.
type ActionClient struct {
	baseURL string
	token   string
	client  *http.Client
}

var (
	_ TransactionRecorder = &ActionClient{}
	_ TransactionChecker  = &ActionClient{}
)

func (c *ActionClient) SaveTransaction(ctx context.Context, input models.SaveTransactionInput) (models.SaveTransactionResult, error) {
	var result models.SaveTransactionResult
	err := c.post(ctx, models.ActionSaveTransactionPath, input, &result)
	return result, err
}

func (c *ActionClient) CheckTransaction(ctx context.Context, input models.CheckTransactionInput) (models.CheckTransactionResult, error) {
	var result models.CheckTransactionResult
	err := c.post(ctx, models.ActionCheckTransactionPath, input, &result)
	return result, err
}

func (c *ActionClient) ClaimPoints(ctx context.Context) (models.ClaimPointsResult, error) {
	var result models.ClaimPointsResult
	err := c.post(ctx, models.ActionClaimPointsPath, struct{}{}, &result)
	return result, err
}

func (c *ActionClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		cause := fmt.Errorf("post %s: status %d", path, res.StatusCode)
		var e errorResponse
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
			cause = fmt.Errorf("post %s: status %d: decode error body: %w", path, res.StatusCode, err)
		}
		message := e.Error
		if message == "" {
			message = http.StatusText(res.StatusCode)
		}
		return common.NewError(kindForStatus(res.StatusCode), message, cause)
	}

	return json.NewDecoder(res.Body).Decode(out)
}

func kindForStatus(status int) common.ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return common.ErrorKindValidation
	case http.StatusUnauthorized:
		return common.ErrorKindUnauthenticated
	case http.StatusForbidden:
		return common.ErrorKindUnauthorized
	case http.StatusNotFound:
		return common.ErrorKindNotFound
	default:
		return common.ErrorKindInternal
	}
}

func NewActionClient(baseURL string, token string) *ActionClient {
	return &ActionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: defaultActionTimeout},
	}
}
