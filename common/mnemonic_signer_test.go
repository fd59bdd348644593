package common

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestNewMnemonicSigner(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, DefaultETHHDPath)
	assert.NoError(t, err)
	assert.NotNil(t, signer)

	assert.NotNil(t, signer.ethPrivKey)
	// first hardhat account
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.ethAddress)
}

func TestNewMnemonicSigner_DefaultPath(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, "")
	assert.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.EthAddress())
}

func TestNewMnemonicSigner_Invalid(t *testing.T) {
	signer, err := NewMnemonicSigner("not a mnemonic", DefaultETHHDPath)
	assert.Error(t, err)
	assert.Nil(t, signer)

	signer, err = NewMnemonicSigner(testMnemonic, "m/invalid")
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestMnemonicSigner_EthSign(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, DefaultETHHDPath)
	assert.NoError(t, err)

	data := []byte("test data")
	sig, err := signer.EthSign(data)
	assert.NoError(t, err)
	assert.NotNil(t, sig)

	if sig[64] != 27 && sig[64] != 28 {
		t.Fatalf("invalid Ethereum signature")
	}

	sig[64] -= 27

	hash := crypto.Keccak256(data)
	pubKey, err := crypto.SigToPub(hash, sig)
	assert.NoError(t, err)

	recoveredAddr := crypto.PubkeyToAddress(*pubKey)
	assert.Equal(t, signer.EthAddress(), recoveredAddr)
}

func TestMnemonicSigner_EthSign_Hash(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, DefaultETHHDPath)
	assert.NoError(t, err)

	hash := crypto.Keccak256([]byte("already hashed"))
	sig, err := signer.EthSign(hash)
	assert.NoError(t, err)

	sig[64] -= 27
	pubKey, err := crypto.SigToPub(hash, sig)
	assert.NoError(t, err)
	assert.Equal(t, signer.EthAddress(), crypto.PubkeyToAddress(*pubKey))
}

func TestMnemonicSigner_Destroy(t *testing.T) {
	signer, err := NewMnemonicSigner(testMnemonic, DefaultETHHDPath)
	assert.NoError(t, err)

	signer.Destroy()
	// Nothing to assert here since the Destroy method does nothing
}
