package models

const (
	ActionSaveTransactionPath  = "/api/actions/save-decent-transaction"
	ActionCheckTransactionPath = "/api/actions/check-decent-transaction"
	ActionClaimPointsPath      = "/api/actions/claim-points"
)

// SaveTransactionInput is what a client reports after its purchase
// transaction was accepted by the source chain.
type SaveTransactionInput struct {
	ScoutID             string `json:"scoutId"`
	WalletAddress       string `json:"walletAddress"`
	SourceChainID       int64  `json:"sourceChainId"`
	DestinationChainID  int64  `json:"destinationChainId"`
	SourceChainTxHash   string `json:"sourceChainTxHash"`
	TokenAmount         int64  `json:"tokenAmount"`
	QuotedPrice         string `json:"quotedPrice"`
	QuotedPriceCurrency string `json:"quotedPriceCurrency"`
	TokenID             int64  `json:"tokenId"`
	BuilderID           string `json:"builderId"`
	ContractAddress     string `json:"contractAddress"`
}

type SaveTransactionResult struct {
	ID     string `json:"id"`
	TxHash string `json:"txHash"`
	Status string `json:"status"`
}

type CheckTransactionInput struct {
	PendingTransactionID string `json:"pendingTransactionId"`
	TxHash               string `json:"txHash"`
}

type CheckTransactionResult struct {
	Status                 string `json:"status"`
	DestinationChainTxHash string `json:"destinationChainTxHash,omitempty"`
}

type ClaimPointsResult struct {
	Success       bool  `json:"success"`
	ClaimedPoints int64 `json:"claimedPoints"`
}

// ClaimResult is the ledger's view of a claim.
type ClaimResult struct {
	Total int64
}
