package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/scout-mint-validator/common"
)

func TestCreateWalletSigner(t *testing.T) {
	t.Run("No Keys", func(t *testing.T) {
		Config.Wallet.Mnemonic = ""
		Config.Wallet.GcpKmsKeyName = ""

		signer, err := CreateWalletSigner()
		assert.Error(t, err)
		assert.Nil(t, signer)
	})

	t.Run("Invalid Mnemonic", func(t *testing.T) {
		Config.Wallet.Mnemonic = "invalid mnemonic"
		Config.Wallet.HDPath = common.DefaultETHHDPath

		signer, err := CreateWalletSigner()
		assert.Error(t, err)
		assert.Nil(t, signer)
	})

	t.Run("Valid Mnemonic", func(t *testing.T) {
		Config.Wallet.Mnemonic = "test test test test test test test test test test test junk"
		Config.Wallet.HDPath = common.DefaultETHHDPath

		signer, err := CreateWalletSigner()
		assert.NoError(t, err)
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", signer.EthAddress().Hex())
	})
}
