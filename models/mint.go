package models

import "math/big"

// TxRequest is the transaction a wallet is asked to sign and broadcast.
type TxRequest struct {
	To    string   `json:"to"`
	Data  string   `json:"data"`
	Value *big.Int `json:"value"`
}

type TxMetadata struct {
	FromAddress    string `json:"fromAddress"`
	SourceChainID  int64  `json:"sourceChainId"`
	BuilderTokenID int64  `json:"builderTokenId"`
	BuilderID      string `json:"builderId"`
	PurchaseCost   int64  `json:"purchaseCost"`
	TokensToBuy    int64  `json:"tokensToBuy"`
}

type MintTransactionInput struct {
	TxData     TxRequest  `json:"txData"`
	TxMetadata TxMetadata `json:"txMetadata"`
}
