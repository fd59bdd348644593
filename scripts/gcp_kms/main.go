package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/dan13ram/scout-mint-validator/common"
)

// Prints the relayer address behind a KMS key and checks that a signature
// made with it recovers to that address.
func main() {
	keyName := os.Getenv("WALLET_GCP_KMS_KEY_NAME")

	fmt.Println("Google KMS Key Name: ", keyName)
	if keyName == "" {
		log.Fatalf("WALLET_GCP_KMS_KEY_NAME not set")
	}

	signer, err := common.NewGcpKmsSigner(keyName)
	if err != nil {
		log.Fatalf("failed to create GCP KMS signer: %v", err)
	}
	defer signer.Destroy()

	fmt.Println("Eth Address: ", signer.EthAddress())

	data := []byte("scout mint validator")
	signature, err := signer.EthSign(data)
	if err != nil {
		log.Fatalf("failed to sign: %v", err)
	}
	fmt.Printf("Signature: %x\n", signature)

	sig := make([]byte, 65)
	copy(sig, signature)
	sig[64] -= 27

	pub, err := crypto.SigToPub(crypto.Keccak256(data), sig)
	if err != nil {
		log.Fatalf("failed to recover signer: %v", err)
	}
	recovered := crypto.PubkeyToAddress(*pub)
	fmt.Println("Recovered Address: ", recovered)

	if recovered != signer.EthAddress() {
		log.Fatalf("recovered address does not match")
	}
}
