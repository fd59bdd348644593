package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionNFTPurchaseEvents = "builder_nft_purchases"
)

type NFTPurchaseEvent struct {
	Id                     *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PendingTransactionID   string              `bson:"pending_transaction_id" json:"pending_transaction_id"`
	ScoutID                string              `bson:"scout_id" json:"scout_id"`
	WalletAddress          string              `bson:"wallet_address" json:"wallet_address"`
	BuilderID              string              `bson:"builder_id" json:"builder_id"`
	TokenID                int64               `bson:"token_id" json:"token_id"`
	TokensPurchased        int64               `bson:"tokens_purchased" json:"tokens_purchased"`
	PaidAmount             string              `bson:"paid_amount" json:"paid_amount"`
	PointsValue            int64               `bson:"points_value" json:"points_value"`
	SourceChainTxHash      string              `bson:"source_chain_tx_hash" json:"source_chain_tx_hash"`
	DestinationChainTxHash string              `bson:"destination_chain_tx_hash" json:"destination_chain_tx_hash"`
	AttestationUID         string              `bson:"attestation_uid" json:"attestation_uid"`
	AttestationTxHash      string              `bson:"attestation_tx_hash" json:"attestation_tx_hash"`
	CreatedAt              time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time           `bson:"updated_at" json:"updated_at"`
}
