package purchase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dan13ram/scout-mint-validator/app"
	"github.com/dan13ram/scout-mint-validator/app/mocks"
	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/decent"
	decentMocks "github.com/dan13ram/scout-mint-validator/decent/mocks"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	ethMocks "github.com/dan13ram/scout-mint-validator/eth/client/mocks"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/points"
	pointsMocks "github.com/dan13ram/scout-mint-validator/points/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

var testNow = time.Date(2024, time.October, 16, 12, 0, 0, 0, time.UTC)

const (
	baseChainID     = 8453
	optimismChainID = 10
)

type verifierFixture struct {
	verifier *BridgeVerifier
	db       *mocks.MockDatabase
	bridge   *decentMocks.MockClient
	dst      *ethMocks.MockEthereumClient
	ledger   *pointsMocks.MockLedger
}

func newVerifierFixture(t *testing.T) verifierFixture {
	db := mocks.NewMockDatabase(t)
	app.DB = db

	dst := ethMocks.NewMockEthereumClient(t)
	dst.EXPECT().ChainID().Return(baseChainID)

	bridge := decentMocks.NewMockClient(t)
	ledger := pointsMocks.NewMockLedger(t)

	v := NewBridgeVerifier(bridge, eth.NewPoolFromClients(dst), ledger, models.PointsConfig{
		PointsPerUSDC:       100,
		BuilderSharePercent: 20,
	})
	v.now = func() time.Time { return testNow }

	return verifierFixture{verifier: v, db: db, bridge: bridge, dst: dst, ledger: ledger}
}

func pendingTx(id primitive.ObjectID) models.PendingTransaction {
	return models.PendingTransaction{
		Id:                 &id,
		ScoutID:            "scout-1",
		WalletAddress:      "0xBEEF",
		SourceChainID:      optimismChainID,
		DestinationChainID: baseChainID,
		SourceChainTxHash:  "0xTX1",
		Status:             models.StatusPending,
		TokenAmount:        1,
		QuotedPrice:        "2000000",
		TokenID:            7,
		BuilderID:          "builder-1",
		ContractAddress:    "0xA1",
	}
}

func expectLoad(db *mocks.MockDatabase, id primitive.ObjectID, tx models.PendingTransaction) *mocks.MockDatabase_FindOne_Call {
	return db.EXPECT().FindOne(models.CollectionPendingTransactions, bson.M{"_id": id}, mock.Anything).
		Run(func(_ string, _ interface{}, result interface{}) {
			*result.(*models.PendingTransaction) = tx
		}).Return(nil)
}

func executed(destinationTxHash string) *decent.StatusResponse {
	return &decent.StatusResponse{
		Status: decent.StatusExecuted,
		Transaction: &decent.Transaction{
			DstTx: &decent.DstTx{Fast: &decent.TxInfo{ChainID: baseChainID, TransactionHash: destinationTxHash}},
		},
	}
}

func expectedEvent(id primitive.ObjectID, destinationTxHash string) models.NFTPurchaseEvent {
	return models.NFTPurchaseEvent{
		PendingTransactionID:   id.Hex(),
		ScoutID:                "scout-1",
		WalletAddress:          "0xBEEF",
		BuilderID:              "builder-1",
		TokenID:                7,
		TokensPurchased:        1,
		PaidAmount:             "2000000",
		PointsValue:            200,
		SourceChainTxHash:      "0xTX1",
		DestinationChainTxHash: destinationTxHash,
		CreatedAt:              testNow,
		UpdatedAt:              testNow,
	}
}

func expectedReceipt() models.PointsReceipt {
	return models.PointsReceipt{
		RecipientID: "builder-1",
		Value:       40,
		Season:      points.Season(testNow),
		Event:       models.PointsEventNFTPurchase,
		Source:      "nft_purchase:0xTX1",
		CreatedAt:   testNow,
	}
}

func transitionArgs(id primitive.ObjectID, status string, destinationTxHash string) (bson.M, bson.M) {
	return bson.M{"_id": id, "status": models.StatusPending}, bson.M{
		"$set": bson.M{
			"status":                    status,
			"destination_chain_tx_hash": destinationTxHash,
			"updated_at":                testNow,
		},
	}
}

func TestCheckBridgedPurchase(t *testing.T) {
	f := newVerifierFixture(t)
	id := primitive.NewObjectID()
	tx := pendingTx(id)

	expectLoad(f.db, id, tx).Once()
	f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil).Once()
	f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil).Once()
	f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, expectedEvent(id, "0xTX2")).Return(primitive.NewObjectID(), nil).Once()
	f.ledger.EXPECT().CreditPoints(mock.Anything, expectedReceipt()).Return(true, nil).Once()
	filter, update := transitionArgs(id, models.StatusSuccess, "0xTX2")
	f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil).Once()

	input := models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"}
	result, err := f.verifier.Check(context.Background(), input)

	assert.Nil(t, err)
	assert.Equal(t, models.CheckTransactionResult{Status: models.StatusSuccess, DestinationChainTxHash: "0xTX2"}, result)

	// a second check answers from the stored record without asking the bridge
	settled := tx
	settled.Status = models.StatusSuccess
	settled.DestinationChainTxHash = "0xTX2"
	expectLoad(f.db, id, settled).Once()

	result, err = f.verifier.Check(context.Background(), input)

	assert.Nil(t, err)
	assert.Equal(t, models.CheckTransactionResult{Status: models.StatusSuccess, DestinationChainTxHash: "0xTX2"}, result)
}

func TestCheckValidation(t *testing.T) {

	t.Run("Invalid ID", func(t *testing.T) {
		f := newVerifierFixture(t)

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: "nope", TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Missing Hash", func(t *testing.T) {
		f := newVerifierFixture(t)

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: primitive.NewObjectID().Hex()})

		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		f.db.EXPECT().FindOne(models.CollectionPendingTransactions, bson.M{"_id": id}, mock.Anything).Return(mongo.ErrNoDocuments)

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("Load Error", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		f.db.EXPECT().FindOne(models.CollectionPendingTransactions, bson.M{"_id": id}, mock.Anything).Return(errors.New("error"))

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrPersistence)
	})

	t.Run("Hash Mismatch", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xOTHER"})

		assert.ErrorIs(t, err, common.ErrValidation)
	})
}

func TestCheckTerminal(t *testing.T) {
	f := newVerifierFixture(t)
	id := primitive.NewObjectID()
	tx := pendingTx(id)
	tx.Status = models.StatusFailed
	expectLoad(f.db, id, tx)

	result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

	assert.Nil(t, err)
	assert.Equal(t, models.StatusFailed, result.Status)
}

func TestCheckBridgeOutcomes(t *testing.T) {

	t.Run("Bridge Unavailable", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(nil, errors.New("timeout"))

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrVerificationUnavailable)
	})

	t.Run("Not Indexed Yet", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(&decent.StatusResponse{Status: decent.StatusNotFound}, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.CheckTransactionResult{Status: models.StatusPending}, result)
	})

	t.Run("Executed Without Destination Hash", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(&decent.StatusResponse{Status: decent.StatusExecuted}, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.StatusPending, result.Status)
	})

	t.Run("Destination Receipt Missing", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(nil, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.StatusPending, result.Status)
	})

	t.Run("Bridge Failed", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(&decent.StatusResponse{Status: decent.StatusReverted}, nil)
		filter, update := transitionArgs(id, models.StatusFailed, "")
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.CheckTransactionResult{Status: models.StatusFailed}, result)
	})

	t.Run("Destination Reverted", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
		filter, update := transitionArgs(id, models.StatusFailed, "0xTX2")
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.StatusFailed, result.Status)
	})

	t.Run("No Client For Destination", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		tx := pendingTx(id)
		tx.DestinationChainID = 1
		expectLoad(f.db, id, tx)
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrVerificationUnavailable)
	})
}

func TestCheckSameChain(t *testing.T) {
	f := newVerifierFixture(t)
	id := primitive.NewObjectID()
	tx := pendingTx(id)
	tx.SourceChainID = baseChainID
	expectLoad(f.db, id, tx)
	f.dst.EXPECT().GetTransactionReceipt("0xTX1").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
	f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, expectedEvent(id, "0xTX1")).Return(primitive.NewObjectID(), nil)
	f.ledger.EXPECT().CreditPoints(mock.Anything, expectedReceipt()).Return(true, nil)
	filter, update := transitionArgs(id, models.StatusSuccess, "0xTX1")
	f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil)

	result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

	assert.Nil(t, err)
	assert.Equal(t, models.CheckTransactionResult{Status: models.StatusSuccess, DestinationChainTxHash: "0xTX1"}, result)
}

func TestCheckEffects(t *testing.T) {

	t.Run("Duplicate Event", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, mock.Anything).Return(primitive.NilObjectID, mongo.CommandError{Code: 11000})
		f.ledger.EXPECT().CreditPoints(mock.Anything, expectedReceipt()).Return(false, nil)
		filter, update := transitionArgs(id, models.StatusSuccess, "0xTX2")
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.StatusSuccess, result.Status)
	})

	t.Run("Event Insert Error Keeps Pending", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, mock.Anything).Return(primitive.NilObjectID, errors.New("error"))

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrPersistence)
	})

	t.Run("Credit Error Keeps Pending", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, mock.Anything).Return(primitive.NewObjectID(), nil)
		f.ledger.EXPECT().CreditPoints(mock.Anything, mock.Anything).Return(false, common.NewError(common.ErrorKindPersistence, "could not credit points", nil))

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrPersistence)
	})

	t.Run("Free Purchase Skips Credit", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		tx := pendingTx(id)
		tx.QuotedPrice = "0"
		expectLoad(f.db, id, tx)
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, mock.Anything).Return(primitive.NewObjectID(), nil)
		filter, update := transitionArgs(id, models.StatusSuccess, "0xTX2")
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.StatusSuccess, result.Status)
	})

	t.Run("Out Of Range Price Records Without Points", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		tx := pendingTx(id)
		tx.QuotedPrice = "99999999999999999999999999999"
		expectLoad(f.db, id, tx)
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(executed("0xTX2"), nil)
		f.dst.EXPECT().GetTransactionReceipt("0xTX2").Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		f.db.EXPECT().InsertOne(models.CollectionNFTPurchaseEvents, mock.MatchedBy(func(e models.NFTPurchaseEvent) bool {
			return e.PointsValue == 0 && e.PaidAmount == tx.QuotedPrice
		})).Return(primitive.NewObjectID(), nil)
		filter, update := transitionArgs(id, models.StatusSuccess, "0xTX2")
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(1, nil)

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.StatusSuccess, result.Status)
		f.ledger.AssertNotCalled(t, "CreditPoints", mock.Anything, mock.Anything)
	})
}

func TestCheckTransition(t *testing.T) {

	t.Run("Settled Concurrently", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		tx := pendingTx(id)
		expectLoad(f.db, id, tx).Once()
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(&decent.StatusResponse{Status: decent.StatusFailed}, nil)
		filter, update := transitionArgs(id, models.StatusFailed, "")
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, filter, update).Return(0, nil)

		settled := tx
		settled.Status = models.StatusSuccess
		settled.DestinationChainTxHash = "0xTX2"
		expectLoad(f.db, id, settled).Once()

		result, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.Nil(t, err)
		assert.Equal(t, models.CheckTransactionResult{Status: models.StatusSuccess, DestinationChainTxHash: "0xTX2"}, result)
	})

	t.Run("Update Error", func(t *testing.T) {
		f := newVerifierFixture(t)
		id := primitive.NewObjectID()
		expectLoad(f.db, id, pendingTx(id))
		f.bridge.EXPECT().GetStatus(mock.Anything, int64(optimismChainID), "0xTX1").Return(&decent.StatusResponse{Status: decent.StatusExpired}, nil)
		f.db.EXPECT().UpdateOne(models.CollectionPendingTransactions, mock.Anything, mock.Anything).Return(0, errors.New("error"))

		_, err := f.verifier.Check(context.Background(), models.CheckTransactionInput{PendingTransactionID: id.Hex(), TxHash: "0xTX1"})

		assert.ErrorIs(t, err, common.ErrPersistence)
	})
}
