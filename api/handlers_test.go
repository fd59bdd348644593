package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/scout-mint-validator/api/mocks"
	"github.com/dan13ram/scout-mint-validator/app"
	appMocks "github.com/dan13ram/scout-mint-validator/app/mocks"
	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
	purchaseMocks "github.com/dan13ram/scout-mint-validator/purchase/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

type fakeHealth struct {
	healthy bool
}

func (f fakeHealth) Healthy() bool {
	return f.healthy
}

func (f fakeHealth) ServiceHealths() []models.ServiceHealth {
	return []models.ServiceHealth{{Name: "PENDING VERIFIER", Healthy: f.healthy}}
}

type handlerFixture struct {
	routes   http.Handler
	db       *appMocks.MockDatabase
	recorder *purchaseMocks.MockRecorder
	verifier *purchaseMocks.MockVerifier
	claimer  *mocks.MockPointsClaimer
}

func newHandlerFixture(t *testing.T, health HealthReporter) handlerFixture {
	db := appMocks.NewMockDatabase(t)
	app.DB = db

	recorder := purchaseMocks.NewMockRecorder(t)
	verifier := purchaseMocks.NewMockVerifier(t)
	claimer := mocks.NewMockPointsClaimer(t)

	h := NewHandler(recorder, verifier, claimer, NewAuthenticator(testSecret), health)

	return handlerFixture{routes: h.Routes(), db: db, recorder: recorder, verifier: verifier, claimer: claimer}
}

func do(t *testing.T, routes http.Handler, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		assert.Nil(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	var res errorResponse
	assert.Nil(t, json.NewDecoder(rec.Body).Decode(&res))
	return res.Error
}

func TestClaimPointsHandler(t *testing.T) {

	t.Run("Claims For Token Scout", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		f.claimer.EXPECT().ClaimPoints(mock.Anything, "scout-1").Return(models.ClaimPointsResult{Success: true, ClaimedPoints: 120}, nil)

		rec := do(t, f.routes, http.MethodPost, models.ActionClaimPointsPath, scoutToken(t, "scout-1"), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res models.ClaimPointsResult
		assert.Nil(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, models.ClaimPointsResult{Success: true, ClaimedPoints: 120}, res)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		f := newHandlerFixture(t, nil)

		rec := do(t, f.routes, http.MethodPost, models.ActionClaimPointsPath, "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "You must be logged in", errorBody(t, rec))
	})

	t.Run("Ledger Error", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		f.claimer.EXPECT().ClaimPoints(mock.Anything, "scout-1").
			Return(models.ClaimPointsResult{}, common.NewError(common.ErrorKindPersistence, "could not lock claim", nil))

		rec := do(t, f.routes, http.MethodPost, models.ActionClaimPointsPath, scoutToken(t, "scout-1"), nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong", errorBody(t, rec))
	})

	t.Run("Wrong Method", func(t *testing.T) {
		f := newHandlerFixture(t, nil)

		rec := do(t, f.routes, http.MethodGet, models.ActionClaimPointsPath, scoutToken(t, "scout-1"), nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestSaveTransactionHandler(t *testing.T) {

	t.Run("Scout Comes From Token", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		input := models.SaveTransactionInput{ScoutID: "someone-else", SourceChainID: 10, SourceChainTxHash: "0xTX1"}

		expected := input
		expected.ScoutID = "scout-1"
		f.recorder.EXPECT().Save(mock.Anything, expected).
			Return(models.SaveTransactionResult{ID: "pt-1", TxHash: "0xTX1", Status: models.StatusPending}, nil)

		rec := do(t, f.routes, http.MethodPost, models.ActionSaveTransactionPath, scoutToken(t, "scout-1"), input)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res models.SaveTransactionResult
		assert.Nil(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, models.SaveTransactionResult{ID: "pt-1", TxHash: "0xTX1", Status: models.StatusPending}, res)
	})

	t.Run("Validation Error", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		f.recorder.EXPECT().Save(mock.Anything, mock.Anything).
			Return(models.SaveTransactionResult{}, common.NewError(common.ErrorKindValidation, "sourceChainTxHash is required", nil))

		rec := do(t, f.routes, http.MethodPost, models.ActionSaveTransactionPath, scoutToken(t, "scout-1"), models.SaveTransactionInput{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "sourceChainTxHash is required", errorBody(t, rec))
	})

	t.Run("Persistence Error", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		f.recorder.EXPECT().Save(mock.Anything, mock.Anything).
			Return(models.SaveTransactionResult{}, common.NewError(common.ErrorKindPersistence, "could not save transaction", nil))

		rec := do(t, f.routes, http.MethodPost, models.ActionSaveTransactionPath, scoutToken(t, "scout-1"), models.SaveTransactionInput{})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong", errorBody(t, rec))
	})

	t.Run("Bad Body", func(t *testing.T) {
		f := newHandlerFixture(t, nil)

		rec := do(t, f.routes, http.MethodPost, models.ActionSaveTransactionPath, scoutToken(t, "scout-1"), "{not json")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request body", errorBody(t, rec))
	})
}

func TestCheckTransactionHandler(t *testing.T) {

	expectRecord := func(db *appMocks.MockDatabase, id primitive.ObjectID, scoutID string) {
		db.EXPECT().FindOne(models.CollectionPendingTransactions, bson.M{"_id": id}, mock.Anything).
			Run(func(_ string, _ interface{}, result interface{}) {
				*result.(*models.PendingTransaction) = models.PendingTransaction{Id: &id, ScoutID: scoutID, Status: models.StatusPending}
			}).Return(nil)
	}

	t.Run("Own Record", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		id := primitive.NewObjectID()
		input := models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"}

		expectRecord(f.db, id, "scout-1")
		f.verifier.EXPECT().Check(mock.Anything, input).
			Return(models.CheckTransactionResult{Status: models.StatusSuccess, DestinationChainTxHash: "0xTX2"}, nil)

		rec := do(t, f.routes, http.MethodPost, models.ActionCheckTransactionPath, scoutToken(t, "scout-1"), input)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res models.CheckTransactionResult
		assert.Nil(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, models.StatusSuccess, res.Status)
	})

	t.Run("Another Scout's Record", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		id := primitive.NewObjectID()

		expectRecord(f.db, id, "scout-2")

		rec := do(t, f.routes, http.MethodPost, models.ActionCheckTransactionPath, scoutToken(t, "scout-1"),
			models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You are not allowed to do this", errorBody(t, rec))
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		id := primitive.NewObjectID()
		f.db.EXPECT().FindOne(models.CollectionPendingTransactions, bson.M{"_id": id}, mock.Anything).Return(mongo.ErrNoDocuments)

		rec := do(t, f.routes, http.MethodPost, models.ActionCheckTransactionPath, scoutToken(t, "scout-1"),
			models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "pending transaction not found", errorBody(t, rec))
	})

	t.Run("Invalid ID", func(t *testing.T) {
		f := newHandlerFixture(t, nil)

		rec := do(t, f.routes, http.MethodPost, models.ActionCheckTransactionPath, scoutToken(t, "scout-1"),
			models.CheckTransactionInput{PendingTransactionID: "nope", TxHash: "0xTX1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Verification Unavailable", func(t *testing.T) {
		f := newHandlerFixture(t, nil)
		id := primitive.NewObjectID()

		expectRecord(f.db, id, "scout-1")
		f.verifier.EXPECT().Check(mock.Anything, mock.Anything).
			Return(models.CheckTransactionResult{}, common.NewError(common.ErrorKindVerificationUnavailable, "could not verify transaction", nil))

		rec := do(t, f.routes, http.MethodPost, models.ActionCheckTransactionPath, scoutToken(t, "scout-1"),
			models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong", errorBody(t, rec))
	})
}

func TestHealthzHandler(t *testing.T) {

	t.Run("Healthy", func(t *testing.T) {
		f := newHandlerFixture(t, fakeHealth{healthy: true})

		rec := do(t, f.routes, http.MethodGet, "/healthz", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var res healthResponse
		assert.Nil(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.True(t, res.Healthy)
		assert.Len(t, res.ServiceHealths, 1)
	})

	t.Run("Unhealthy", func(t *testing.T) {
		f := newHandlerFixture(t, fakeHealth{healthy: false})

		rec := do(t, f.routes, http.MethodGet, "/healthz", "", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("No Reporter", func(t *testing.T) {
		f := newHandlerFixture(t, nil)

		rec := do(t, f.routes, http.MethodGet, "/healthz", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestMetricsHandler(t *testing.T) {
	f := newHandlerFixture(t, nil)

	rec := do(t, f.routes, http.MethodGet, "/metrics", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
