package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/common"
	eth "github.com/dan13ram/scout-mint-validator/eth/client"
	"github.com/dan13ram/scout-mint-validator/models"
	"github.com/dan13ram/scout-mint-validator/wallet"
)

type options struct {
	RPCURL        string `long:"rpc-url" env:"PURCHASE_RPC_URL" description:"rpc url of the source chain" required:"true"`
	SourceChainID string `long:"source-chain-id" env:"PURCHASE_SOURCE_CHAIN_ID" description:"source chain id" required:"true"`
	Mnemonic      string `long:"mnemonic" env:"PURCHASE_MNEMONIC" description:"wallet mnemonic"`
	HDPath        string `long:"hd-path" env:"PURCHASE_HD_PATH" description:"wallet derivation path"`
	GcpKmsKeyName string `long:"gcp-kms-key-name" env:"PURCHASE_GCP_KMS_KEY_NAME" description:"kms key used instead of a mnemonic"`

	APIURL string `long:"api-url" env:"PURCHASE_API_URL" description:"base url of the validator api" default:"http://localhost:8080"`
	Token  string `long:"token" env:"PURCHASE_TOKEN" description:"scout session token" required:"true"`

	To   string `long:"to" description:"transaction target, usually the bridge router" required:"true"`
	Data string `long:"data" description:"hex encoded calldata"`
	// Value is in wei.
	Value string `long:"value" description:"native value to send" default:"0"`

	BuilderTokenID     int64  `long:"builder-token-id" description:"builder nft token id" required:"true"`
	BuilderID          string `long:"builder-id" description:"builder id" required:"true"`
	TokensToBuy        int64  `long:"tokens" description:"number of nfts to buy" default:"1"`
	PurchaseCost       int64  `long:"cost" description:"quoted price in usdc base units" required:"true"`
	DestinationChainID int64  `long:"destination-chain-id" description:"builder nft chain id" default:"10"`
	ContractAddress    string `long:"contract" description:"builder nft contract address" required:"true"`
	USDCAddress        string `long:"usdc" description:"usdc address on the builder nft chain" default:"0x0b2c639c533813f4aa9d7837caf62653d097ff85"`

	Claim   bool `long:"claim" description:"claim unclaimed points after settlement"`
	Verbose bool `short:"v" long:"verbose" description:"debug logging"`
}

func createSigner(opts options) (common.Signer, error) {
	if opts.Mnemonic != "" {
		hdPath := opts.HDPath
		if hdPath == "" {
			hdPath = common.DefaultETHHDPath
		}
		return common.NewMnemonicSigner(opts.Mnemonic, hdPath)
	}
	if opts.GcpKmsKeyName != "" {
		return common.NewGcpKmsSigner(opts.GcpKmsKeyName)
	}
	return nil, fmt.Errorf("either mnemonic or gcp kms key name is required")
}

func mintInput(opts options, from string, sourceChainID int64) (models.MintTransactionInput, error) {
	value, ok := new(big.Int).SetString(opts.Value, 10)
	if !ok {
		return models.MintTransactionInput{}, fmt.Errorf("invalid value %q", opts.Value)
	}
	if !common.IsValidEthereumAddress(opts.ContractAddress) {
		return models.MintTransactionInput{}, fmt.Errorf("invalid contract address %q", opts.ContractAddress)
	}
	data := opts.Data
	if data != "" {
		data = common.Ensure0xPrefix(data)
	}

	return models.MintTransactionInput{
		TxData: models.TxRequest{
			To:    opts.To,
			Data:  data,
			Value: value,
		},
		TxMetadata: models.TxMetadata{
			FromAddress:    from,
			SourceChainID:  sourceChainID,
			BuilderTokenID: opts.BuilderTokenID,
			BuilderID:      opts.BuilderID,
			PurchaseCost:   opts.PurchaseCost,
			TokensToBuy:    opts.TokensToBuy,
		},
	}, nil
}

var newSigner = createSigner

// run owns the signer so it is destroyed on every return path.
func run(ctx context.Context, opts options, client eth.EthereumClient) error {
	signer, err := newSigner(opts)
	if err != nil {
		return fmt.Errorf("initializing signer: %w", err)
	}
	defer signer.Destroy()

	input, err := mintInput(opts, signer.EthAddress().Hex(), client.ChainID())
	if err != nil {
		return err
	}

	actions := wallet.NewActionClient(opts.APIURL, opts.Token)
	orchestrator := wallet.NewTransactionOrchestrator(
		wallet.NewEthSender(client, signer),
		actions,
		actions,
		wallet.NewPurchaseState(),
		wallet.PurchaseTarget{
			DestinationChainID: opts.DestinationChainID,
			ContractAddress:    opts.ContractAddress,
			Currency:           opts.USDCAddress,
		},
	)

	if err := orchestrator.SendMintTransaction(ctx, input); err != nil {
		snapshot := orchestrator.State().Snapshot()
		if snapshot.TxHash == "" {
			return fmt.Errorf("sending transaction: %s", common.UserMessage(err))
		}
		log.WithError(err).WithField("tx_hash", snapshot.TxHash).Warn("[PURCHASE] Transaction sent but not saved, retrying")
		if err := orchestrator.RetrySave(ctx, snapshot.TxHash, input); err != nil {
			return fmt.Errorf("saving transaction: %w", err)
		}
	}

	snapshot := orchestrator.State().Snapshot()
	log.WithFields(log.Fields{
		"tx_hash":                snapshot.TxHash,
		"pending_transaction_id": snapshot.Saved.ID,
	}).Info("[PURCHASE] Transaction saved, waiting for settlement")

	result, err := orchestrator.WaitForSettlement(ctx, snapshot.Saved.ID, snapshot.TxHash)
	if err != nil {
		return errors.New(common.UserMessage(err))
	}
	log.WithField("destination_chain_tx_hash", result.DestinationChainTxHash).Info("[PURCHASE] Purchase settled")

	if !opts.Claim {
		return nil
	}

	claimed, err := actions.ClaimPoints(ctx)
	if err != nil {
		return fmt.Errorf("claiming points: %s", common.UserMessage(err))
	}
	log.WithField("claimed_points", claimed.ClaimedPoints).Info("[PURCHASE] Points claimed")
	return nil
}

func main() {

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	client, err := eth.NewClient(models.ChainConfig{
		ChainID:          opts.SourceChainID,
		RPCURL:           opts.RPCURL,
		RPCTimeoutMillis: 10000,
	})
	if err != nil {
		log.Fatal("[PURCHASE] Error connecting to source chain: ", err)
	}
	client.ValidateNetwork()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, opts, client)
	stop()
	if err != nil {
		log.Fatal("[PURCHASE] ", err)
	}
}
