package decent

const (
	StatusExecuted = "Executed"
	StatusFailed   = "Failed"
	StatusExpired  = "Expired"
	StatusReverted = "Reverted"
	// StatusNotFound is reported when the bridge has not indexed the hash yet.
	StatusNotFound = "NotFound"
)

type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeExecuted
	OutcomeFailed
)

type TxInfo struct {
	ChainID         int64  `json:"chainId"`
	TransactionHash string `json:"transactionHash"`
}

type DstTx struct {
	Fast *TxInfo `json:"fast,omitempty"`
	Slow *TxInfo `json:"slow,omitempty"`
}

type Transaction struct {
	SrcTx *TxInfo `json:"srcTx,omitempty"`
	DstTx *DstTx  `json:"dstTx,omitempty"`
}

type StatusResponse struct {
	Status      string       `json:"status"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

// Outcome maps the bridge status onto settlement. Anything unrecognised,
// including in-flight states, is pending.
func (r *StatusResponse) Outcome() Outcome {
	switch r.Status {
	case StatusExecuted:
		return OutcomeExecuted
	case StatusFailed, StatusExpired, StatusReverted:
		return OutcomeFailed
	default:
		return OutcomePending
	}
}

// DestinationTxHash returns the hash of the settling transaction on the
// destination chain, or "" if the bridge has not reported one.
func (r *StatusResponse) DestinationTxHash() string {
	if r.Transaction == nil || r.Transaction.DstTx == nil {
		return ""
	}
	if fast := r.Transaction.DstTx.Fast; fast != nil && fast.TransactionHash != "" {
		return fast.TransactionHash
	}
	if slow := r.Transaction.DstTx.Slow; slow != nil {
		return slow.TransactionHash
	}
	return ""
}
