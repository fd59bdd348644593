package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/scout-mint-validator/common"
)

// CreateWalletSigner returns the signer for the relayer wallet used to
// submit purchases and attestations. A mnemonic takes precedence over KMS.
func CreateWalletSigner() (common.Signer, error) {
	config := Config.Wallet
	if config.Mnemonic == "" && config.GcpKmsKeyName == "" {
		return nil, fmt.Errorf("both Mnemonic and GcpKmsKeyName are empty")
	}

	var signer common.Signer
	var err error
	if config.Mnemonic != "" {
		signer, err = common.NewMnemonicSigner(config.Mnemonic, config.HDPath)
	} else {
		signer, err = common.NewGcpKmsSigner(config.GcpKmsKeyName)
	}
	if err != nil {
		return nil, fmt.Errorf("error initializing wallet signer: %w", err)
	}

	log.Debugf("[SIGNER] Wallet address: %s", signer.EthAddress().Hex())
	return signer, nil
}
