package common

import (
	"github.com/ethereum/go-ethereum/common"
)

type Signer interface {
	// EthSign signs data (hashed with keccak256 unless already 32 bytes) and
	// returns a 65 byte signature with v in {27, 28}.
	EthSign(data []byte) ([]byte, error)
	EthAddress() common.Address
	Destroy()
}
