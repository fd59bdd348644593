package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
)

func TestActionClient(t *testing.T) {

	t.Run("Save", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, models.ActionSaveTransactionPath, r.URL.Path)
			assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

			var input models.SaveTransactionInput
			assert.Nil(t, json.NewDecoder(r.Body).Decode(&input))
			assert.Equal(t, "0xTX1", input.SourceChainTxHash)

			_ = json.NewEncoder(w).Encode(models.SaveTransactionResult{ID: "pt-1", TxHash: "0xTX1", Status: models.StatusPending})
		}))
		defer server.Close()

		client := NewActionClient(server.URL+"/", "token")

		result, err := client.SaveTransaction(context.Background(), models.SaveTransactionInput{SourceChainTxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, "pt-1", result.ID)
	})

	t.Run("Check", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, models.ActionCheckTransactionPath, r.URL.Path)
			_ = json.NewEncoder(w).Encode(models.CheckTransactionResult{Status: models.StatusSuccess, DestinationChainTxHash: "0xTX2"})
		}))
		defer server.Close()

		client := NewActionClient(server.URL, "token")

		result, err := client.CheckTransaction(context.Background(), models.CheckTransactionInput{PendingTransactionID: "pt-1", TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, "0xTX2", result.DestinationChainTxHash)
	})

	t.Run("Claim", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, models.ActionClaimPointsPath, r.URL.Path)
			_ = json.NewEncoder(w).Encode(models.ClaimPointsResult{Success: true, ClaimedPoints: 120})
		}))
		defer server.Close()

		client := NewActionClient(server.URL, "token")

		result, err := client.ClaimPoints(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, models.ClaimPointsResult{Success: true, ClaimedPoints: 120}, result)
	})

	t.Run("Error Mapping", func(t *testing.T) {
		testCases := []struct {
			status int
			target error
		}{
			{http.StatusBadRequest, common.ErrValidation},
			{http.StatusUnauthorized, common.ErrUnauthenticated},
			{http.StatusForbidden, common.ErrUnauthorized},
			{http.StatusNotFound, common.ErrNotFound},
		}

		for _, tc := range testCases {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(errorResponse{Error: "nope"})
			}))

			client := NewActionClient(server.URL, "token")
			_, err := client.CheckTransaction(context.Background(), models.CheckTransactionInput{})

			assert.ErrorIs(t, err, tc.target)
			assert.Equal(t, common.KindOf(tc.target), common.KindOf(err))
			server.Close()
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewActionClient(server.URL, "")

		_, err := client.SaveTransaction(context.Background(), models.SaveTransactionInput{})

		assert.Equal(t, common.ErrorKindInternal, common.KindOf(err))
	})

	t.Run("Non JSON Error Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer server.Close()

		client := NewActionClient(server.URL, "")

		_, err := client.SaveTransaction(context.Background(), models.SaveTransactionInput{})

		var e *common.Error
		assert.ErrorAs(t, err, &e)
		assert.Equal(t, common.ErrorKindInternal, e.Kind)
		assert.Equal(t, http.StatusText(http.StatusBadGateway), e.Message)
		assert.Contains(t, err.Error(), "decode error body")
	})
}
