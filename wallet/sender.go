package wallet

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/common"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/models"
)

// EthSender builds EIP-1559 transactions, signs them with a common.Signer
// and broadcasts them through an EthereumClient.
type EthSender struct {
	client  eth.EthereumClient
	signer  common.Signer
	chainID *big.Int
}

var _ Sender = &EthSender{}

func (s *EthSender) From() ethcommon.Address {
	return s.signer.EthAddress()
}

func (s *EthSender) ChainID() int64 {
	return s.chainID.Int64()
}

func (s *EthSender) SendTransaction(ctx context.Context, req models.TxRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	to := ethcommon.HexToAddress(req.To)
	var data []byte
	if req.Data != "" && req.Data != "0x" {
		decoded, err := hexutil.Decode(req.Data)
		if err != nil {
			return "", fmt.Errorf("decode data: %w", err)
		}
		data = decoded
	}
	value := big.NewInt(0)
	if req.Value != nil {
		value = req.Value
	}

	tx, err := s.buildTransaction(to, value, data)
	if err != nil {
		return "", err
	}

	signed, err := s.signTransaction(tx)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"tx_hash":  signed.Hash().Hex(),
		"chain_id": s.chainID,
		"nonce":    signed.Nonce(),
	}).Debug("[SENDER] Transaction broadcast")

	return signed.Hash().Hex(), nil
}

func (s *EthSender) buildTransaction(to ethcommon.Address, value *big.Int, data []byte) (*types.Transaction, error) {
	from := s.signer.EthAddress()

	nonce, err := s.client.PendingNonceAt(from)
	if err != nil {
		return nil, fmt.Errorf("get nonce: %w", err)
	}

	tip, err := s.client.SuggestGasTipCap()
	if err != nil {
		return nil, fmt.Errorf("suggest tip: %w", err)
	}

	head, err := s.client.HeaderByNumber(nil)
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}

	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	gas, err := s.client.EstimateGas(ethereum.CallMsg{
		From:      from,
		To:        &to,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Value:     value,
		Data:      data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate gas: %w", err)
	}

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Value:     value,
		Data:      data,
	}), nil
}

func (s *EthSender) signTransaction(tx *types.Transaction) (*types.Transaction, error) {
	txSigner := types.LatestSignerForChainID(s.chainID)
	hash := txSigner.Hash(tx)

	sig, err := s.signer.EthSign(hash.Bytes())
	if err != nil {
		return nil, err
	}
	if len(sig) != 65 {
		return nil, errors.New("invalid signature length")
	}

	// transactions carry the raw recovery id
	raw := make([]byte, 65)
	copy(raw, sig)
	if raw[64] >= 27 {
		raw[64] -= 27
	}

	return tx.WithSignature(txSigner, raw)
}

func NewEthSender(client eth.EthereumClient, signer common.Signer) *EthSender {
	return &EthSender{
		client:  client,
		signer:  signer,
		chainID: big.NewInt(client.ChainID()),
	}
}
