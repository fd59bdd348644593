package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionPendingTransactions = "pending_transactions"
)

// types of pending transaction status
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type PendingTransaction struct {
	Id                     *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ScoutID                string              `bson:"scout_id" json:"scout_id"`
	WalletAddress          string              `bson:"wallet_address" json:"wallet_address"`
	SourceChainID          int64               `bson:"source_chain_id" json:"source_chain_id"`
	DestinationChainID     int64               `bson:"destination_chain_id" json:"destination_chain_id"`
	SourceChainTxHash      string              `bson:"source_chain_tx_hash" json:"source_chain_tx_hash"`
	DestinationChainTxHash string              `bson:"destination_chain_tx_hash" json:"destination_chain_tx_hash"`
	Status                 string              `bson:"status" json:"status"`
	TokenAmount            int64               `bson:"token_amount" json:"token_amount"`
	QuotedPrice            string              `bson:"quoted_price" json:"quoted_price"`
	QuotedPriceCurrency    string              `bson:"quoted_price_currency" json:"quoted_price_currency"`
	TokenID                int64               `bson:"token_id" json:"token_id"`
	BuilderID              string              `bson:"builder_id" json:"builder_id"`
	ContractAddress        string              `bson:"contract_address" json:"contract_address"`
	CreatedAt              time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time           `bson:"updated_at" json:"updated_at"`
}

// IsTerminal reports whether no further status transition is allowed.
func (p *PendingTransaction) IsTerminal() bool {
	return p.Status == StatusSuccess || p.Status == StatusFailed
}
