package eas

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/scout-mint-validator/app"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/wallet"
)

const AttesterName = "ATTESTER"

// AttestationRunner attests finalized purchases that have no uid yet.
type AttestationRunner struct {
	attester  Attester
	batchSize int64
	now       func() time.Time

	attested int64
	pending  int64
}

func (x *AttestationRunner) Run() {
	x.attested = 0
	x.pending = 0

	filter := bson.M{"attestation_uid": ""}
	sort := bson.D{{Key: "created_at", Value: 1}}

	var events []models.NFTPurchaseEvent
	if err := app.DB.FindManySorted(models.CollectionNFTPurchaseEvents, filter, sort, x.batchSize, &events); err != nil {
		log.WithError(err).Error("[ATTESTER] Error fetching purchases")
		return
	}

	log.Infof("[ATTESTER] Found %d purchases to attest", len(events))

	for _, event := range events {
		if event.Id == nil {
			continue
		}
		if x.attest(event) {
			x.attested++
		} else {
			x.pending++
		}
	}
}

// attest sends an attestation only when the event has no attestation tx yet,
// otherwise it resumes waiting for the stored one.
func (x *AttestationRunner) attest(event models.NFTPurchaseEvent) bool {
	ctx := context.Background()
	logger := log.WithField("purchase_id", event.Id.Hex())
	filter := bson.M{"_id": event.Id, "attestation_uid": ""}

	txHash := event.AttestationTxHash
	if txHash == "" {
		sent, err := x.attester.Send(ctx, event)
		if err != nil {
			logger.WithError(err).Error("[ATTESTER] Error sending attestation")
			return false
		}
		txHash = sent

		update := bson.M{"$set": bson.M{"attestation_tx_hash": txHash, "updated_at": x.now()}}
		if _, err := app.DB.UpdateOne(models.CollectionNFTPurchaseEvents, filter, update); err != nil {
			// the uid update below stores the hash again
			logger.WithError(err).WithField("attestation_tx_hash", txHash).Error("[ATTESTER] Error storing attestation tx hash")
		}
	} else {
		logger.WithField("attestation_tx_hash", txHash).Debug("[ATTESTER] Resuming attestation")
	}
	logger = logger.WithField("attestation_tx_hash", txHash)

	uid, err := x.attester.Confirm(ctx, txHash)
	if errors.Is(err, ErrAttestationReverted) {
		logger.WithError(err).Warn("[ATTESTER] Attestation reverted, clearing tx hash")
		update := bson.M{"$set": bson.M{"attestation_tx_hash": "", "updated_at": x.now()}}
		if _, err := app.DB.UpdateOne(models.CollectionNFTPurchaseEvents, filter, update); err != nil {
			logger.WithError(err).Error("[ATTESTER] Error clearing attestation tx hash")
		}
		return false
	}
	if err != nil {
		logger.WithError(err).Error("[ATTESTER] Error confirming attestation")
		return false
	}

	update := bson.M{
		"$set": bson.M{
			"attestation_uid":     uid,
			"attestation_tx_hash": txHash,
			"updated_at":          x.now(),
		},
	}
	if _, err := app.DB.UpdateOne(models.CollectionNFTPurchaseEvents, filter, update); err != nil {
		logger.WithError(err).WithField("uid", uid).Error("[ATTESTER] Error storing attestation uid")
		return false
	}
	return true
}

func (x *AttestationRunner) Status() models.RunnerStatus {
	return models.RunnerStatus{
		Processed: strconv.FormatInt(x.attested, 10),
		Pending:   strconv.FormatInt(x.pending, 10),
	}
}

func NewAttestationRunner(attester Attester, batchSize int64) *AttestationRunner {
	return &AttestationRunner{
		attester:  attester,
		batchSize: batchSize,
		now:       time.Now,
	}
}

// NewAttestationService runs only when both the attestation feature and the
// attester service are enabled.
func NewAttestationService(wg *sync.WaitGroup, sender wallet.Sender, client eth.EthereumClient) app.Service {
	if !app.Config.Attestation.Enabled || !app.Config.Attester.Enabled {
		log.Debug("[ATTESTER] Attester disabled")
		return app.NewEmptyService(wg)
	}

	log.Debug("[ATTESTER] Initializing attester")

	attester, err := NewEASAttester(sender, client, app.Config.Attestation)
	if err != nil {
		log.Fatal("[ATTESTER] Error initializing attester: ", err)
	}

	return app.NewRunnerService(
		AttesterName,
		NewAttestationRunner(attester, app.Config.Attestation.BatchSize),
		wg,
		time.Duration(app.Config.Attester.IntervalMillis)*time.Millisecond,
	)
}
