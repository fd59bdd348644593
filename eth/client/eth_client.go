package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/models"
)

type EthereumClient interface {
	ValidateNetwork()
	ChainID() int64
	GetBlockNumber() (uint64, error)
	GetChainID() (*big.Int, error)
	GetClient() *ethclient.Client
	// GetTransactionReceipt returns a nil receipt and no error while the
	// transaction is not yet mined.
	GetTransactionReceipt(txHash string) (*types.Receipt, error)
	PendingNonceAt(account common.Address) (uint64, error)
	SuggestGasTipCap() (*big.Int, error)
	HeaderByNumber(number *big.Int) (*types.Header, error)
	EstimateGas(msg ethereum.CallMsg) (uint64, error)
	SendTransaction(tx *types.Transaction) error
}

type ethereumClient struct {
	client  *ethclient.Client
	chainID int64
	rpcURL  string
	timeout time.Duration
}

func (c *ethereumClient) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

func (c *ethereumClient) GetClient() *ethclient.Client {
	return c.client
}

func (c *ethereumClient) ChainID() int64 {
	return c.chainID
}

func (c *ethereumClient) GetBlockNumber() (uint64, error) {
	ctx, cancel := c.context()
	defer cancel()

	blockNumber, err := c.client.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return blockNumber, nil
}

func (c *ethereumClient) GetChainID() (*big.Int, error) {
	ctx, cancel := c.context()
	defer cancel()

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return chainID, nil
}

func (c *ethereumClient) ValidateNetwork() {
	log.Debugln("[ETH]", "Validating network", c.chainID)
	log.Debugln("[ETH]", "uri", c.rpcURL)

	chainID, err := c.GetChainID()
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get chain ID:", err)
	}
	blockNumber, err := c.GetBlockNumber()
	if err != nil {
		log.Fatalln("[ETH]", "Failed to get block number:", err)
	}

	if chainID.Int64() != c.chainID {
		log.Fatalln("[ETH]", "Chain ID Mismatch", "expected", c.chainID, "got", chainID.Uint64())
	}

	log.Debugln("[ETH]", "blockNumber", blockNumber)

	log.Infoln("[ETH]", "Validated network", c.chainID)
}

func (c *ethereumClient) GetTransactionReceipt(txHash string) (*types.Receipt, error) {
	ctx, cancel := c.context()
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	if errors.Is(err, ethereum.NotFound) {
		return nil, nil
	}
	return receipt, err
}

func (c *ethereumClient) PendingNonceAt(account common.Address) (uint64, error) {
	ctx, cancel := c.context()
	defer cancel()

	return c.client.PendingNonceAt(ctx, account)
}

func (c *ethereumClient) SuggestGasTipCap() (*big.Int, error) {
	ctx, cancel := c.context()
	defer cancel()

	return c.client.SuggestGasTipCap(ctx)
}

func (c *ethereumClient) HeaderByNumber(number *big.Int) (*types.Header, error) {
	ctx, cancel := c.context()
	defer cancel()

	return c.client.HeaderByNumber(ctx, number)
}

func (c *ethereumClient) EstimateGas(msg ethereum.CallMsg) (uint64, error) {
	ctx, cancel := c.context()
	defer cancel()

	return c.client.EstimateGas(ctx, msg)
}

func (c *ethereumClient) SendTransaction(tx *types.Transaction) error {
	ctx, cancel := c.context()
	defer cancel()

	return c.client.SendTransaction(ctx, tx)
}

func NewClient(config models.ChainConfig) (EthereumClient, error) {
	chainID, ok := new(big.Int).SetString(config.ChainID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid chain id %q", config.ChainID)
	}

	client, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", config.RPCURL, err)
	}

	return &ethereumClient{
		client:  client,
		chainID: chainID.Int64(),
		rpcURL:  config.RPCURL,
		timeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
	}, nil
}
