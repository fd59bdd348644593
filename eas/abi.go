package eas

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const easABIJSON = `[
  {
    "inputs": [
      {
        "components": [
          {"internalType": "bytes32", "name": "schema", "type": "bytes32"},
          {
            "components": [
              {"internalType": "address", "name": "recipient", "type": "address"},
              {"internalType": "uint64", "name": "expirationTime", "type": "uint64"},
              {"internalType": "bool", "name": "revocable", "type": "bool"},
              {"internalType": "bytes32", "name": "refUID", "type": "bytes32"},
              {"internalType": "bytes", "name": "data", "type": "bytes"},
              {"internalType": "uint256", "name": "value", "type": "uint256"}
            ],
            "internalType": "struct AttestationRequestData",
            "name": "data",
            "type": "tuple"
          }
        ],
        "internalType": "struct AttestationRequest",
        "name": "request",
        "type": "tuple"
      }
    ],
    "name": "attest",
    "outputs": [{"internalType": "bytes32", "name": "", "type": "bytes32"}],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "address", "name": "recipient", "type": "address"},
      {"indexed": true, "internalType": "address", "name": "attester", "type": "address"},
      {"indexed": false, "internalType": "bytes32", "name": "uid", "type": "bytes32"},
      {"indexed": true, "internalType": "bytes32", "name": "schemaUID", "type": "bytes32"}
    ],
    "name": "Attested",
    "type": "event"
  }
]`

// PurchaseSchema is the EAS schema string the purchase credential encodes.
const PurchaseSchema = "string purchaseId,string scoutId,string builderId,uint256 tokenId,uint256 tokensPurchased,string sourceChainTxHash,string destinationChainTxHash,uint256 pointsValue"

var easABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(easABIJSON))
	if err != nil {
		panic(err)
	}
	easABI = parsed
}

type attestationRequestData struct {
	Recipient      common.Address
	ExpirationTime uint64
	Revocable      bool
	RefUID         [32]byte
	Data           []byte
	Value          *big.Int
}

type attestationRequest struct {
	Schema [32]byte
	Data   attestationRequestData
}
