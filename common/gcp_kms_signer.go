package common

import (
	"context"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	kms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	dcrecSecp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	gax "github.com/googleapis/gax-go/v2"
)

type GCPKeyManagementClient interface {
	Close() error
	GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error)
	AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error)
	GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error)
}

type GcpKmsSigner struct {
	client     GCPKeyManagementClient
	keyName    string
	ethAddress common.Address
}

var _ Signer = &GcpKmsSigner{}

func newKMSClient(ctx context.Context) (GCPKeyManagementClient, error) {
	return kms.NewKeyManagementClient(ctx)
}

var NewGCPKeyManagementClient = newKMSClient

var oidPublicKeyECDSA = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}

func NewGcpKmsSigner(keyName string) (Signer, error) {
	client, err := NewGCPKeyManagementClient(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to create KMS client: %w", err)
	}

	// verify key algorithm
	keyVersionDetails, err := resolveKeyVersionDetails(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	if keyVersionDetails.Algorithm != kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256 {
		return nil, fmt.Errorf("key algorithm is not EC_SIGN_SECP256K1_SHA256")
	}

	pubKeyBytes, err := resolvePubKeyBytes(client, keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve public key: %w", err)
	}

	ethPublicKey, err := crypto.UnmarshalPubkey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal public key: %w", err)
	}

	ethAddress := getEthAddr(pubKeyBytes)

	if ethAddress != crypto.PubkeyToAddress(*ethPublicKey) {
		return nil, fmt.Errorf("ethereum address mismatch")
	}

	return &GcpKmsSigner{
		client:     client,
		keyName:    keyName,
		ethAddress: ethAddress,
	}, nil
}

func (s *GcpKmsSigner) Destroy() {
	s.client.Close()
}

func (s *GcpKmsSigner) EthSign(data []byte) ([]byte, error) {
	digest := data
	if len(digest) != 32 {
		digest = crypto.Keccak256(data)
	}
	hash := common.BytesToHash(digest)
	return ethSignHash(hash, s.client, s.keyName, s.ethAddress)
}

func (s *GcpKmsSigner) EthAddress() common.Address {
	return s.ethAddress
}

func resolvePubKeyBytes(client GCPKeyManagementClient, keyName string) ([]byte, error) {
	publicKeyResp, err := client.GetPublicKey(context.Background(), &kmspb.GetPublicKeyRequest{Name: keyName})
	if err != nil {
		return nil, fmt.Errorf("failed to get public key: %w", err)
	}

	publicKeyPem := publicKeyResp.Pem

	block, _ := pem.Decode([]byte(publicKeyPem))
	if block == nil {
		return nil, fmt.Errorf("public key %q PEM empty: %.130q", keyName, publicKeyPem)
	}

	var info struct {
		AlgID pkix.AlgorithmIdentifier
		Key   asn1.BitString
	}
	_, err = asn1.Unmarshal(block.Bytes, &info)
	if err != nil {
		return nil, fmt.Errorf("public key %q PEM block %q: %w", keyName, block.Type, err)
	}

	if gotAlg := info.AlgID.Algorithm; !gotAlg.Equal(oidPublicKeyECDSA) {
		return nil, fmt.Errorf("public key %q ASN.1 algorithm %s instead of %s", keyName, gotAlg, oidPublicKeyECDSA)
	}

	return info.Key.Bytes, nil
}

// getEthAddr returns the Ethereum address for (uncompressed-)key bytes.
func getEthAddr(bytes []byte) common.Address {
	digest := crypto.Keccak256(bytes[1:])
	var addr common.Address
	copy(addr[:], digest[12:])
	return addr
}

// normalizeS returns s in lower-S form; Ethereum rejects transactions signed with a high S.
func normalizeS(s *big.Int) ([32]byte, error) {
	var scalar dcrecSecp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(s.Bytes()); overflow {
		return [32]byte{}, fmt.Errorf("signature s value overflows curve order")
	}
	if scalar.IsOverHalfOrder() {
		scalar.Negate()
	}
	return scalar.Bytes(), nil
}

func ethSignHash(hash common.Hash, client GCPKeyManagementClient, keyName string, ethAddress common.Address) ([]byte, error) {
	req := kmspb.AsymmetricSignRequest{
		Name: keyName,
		Digest: &kmspb.Digest{
			Digest: &kmspb.Digest_Sha256{
				Sha256: hash[:],
			},
		},
	}
	resp, err := client.AsymmetricSign(context.Background(), &req)
	if err != nil {
		return nil, fmt.Errorf("asymmetric sign operation: %w", err)
	}

	var params struct{ R, S *big.Int }
	_, err = asn1.Unmarshal(resp.Signature, &params)
	if err != nil {
		return nil, fmt.Errorf("asymmetric signature encoding: %w", err)
	}

	var rLen, sLen int // byte size
	if params.R != nil {
		rLen = (params.R.BitLen() + 7) / 8
	}
	if params.S != nil {
		sLen = (params.S.BitLen() + 7) / 8
	}
	if rLen == 0 || rLen > 32 || sLen == 0 || sLen > 32 {
		return nil, fmt.Errorf("asymmetric signature with %d-byte r and %d-byte s denied on size", rLen, sLen)
	}

	lowS, err := normalizeS(params.S)
	if err != nil {
		return nil, err
	}

	// Need uncompressed signature with "recovery ID" at end:
	// https://bitcointalk.org/index.php?topic=5249677.0
	// https://ethereum.stackexchange.com/a/53182/39582
	var sig [66]byte // + 1-byte header + 1-byte tailer
	params.R.FillBytes(sig[33-rLen : 33])
	copy(sig[33:65], lowS[:])

	// Brute force try includes KMS verification
	var recoverErr error
	var finalSig []byte
	for recoveryID := byte(0); recoveryID < 2; recoveryID++ {
		sig[0] = recoveryID + 27 // BitCoin header
		btcsig := sig[:65]       // Exclude Ethereum 'v' parameter
		pubKey, _, err := btcecdsa.RecoverCompact(btcsig, hash[:])
		if err != nil {
			recoverErr = err
			continue
		}

		if getEthAddr(pubKey.SerializeUncompressed()) == ethAddress {
			sig[65] = recoveryID // Ethereum 'v' parameter
			finalSig = sig[1:]   // Exclude BitCoin header
			break
		}
	}

	if finalSig == nil {
		if recoverErr != nil {
			return nil, fmt.Errorf("asymmetric signature address recovery failed: %w", recoverErr)
		}
		return nil, fmt.Errorf("signature address mismatch")
	}

	recoveredPubKey, err := crypto.Ecrecover(hash[:], finalSig)
	if err != nil {
		return nil, fmt.Errorf("failed to recover public key: %w", err)
	}

	recoveredPubKeyECDSA, err := crypto.UnmarshalPubkey(recoveredPubKey)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal recovered public key: %w", err)
	}

	if crypto.PubkeyToAddress(*recoveredPubKeyECDSA) != ethAddress {
		return nil, fmt.Errorf("recovered address mismatch")
	}

	if finalSig[64] < 4 {
		finalSig[64] += 27
	}

	return finalSig, nil
}

func resolveKeyVersionDetails(client GCPKeyManagementClient, keyName string) (*kmspb.CryptoKeyVersion, error) {
	req := &kmspb.GetCryptoKeyVersionRequest{
		Name: keyName,
	}

	resp, err := client.GetCryptoKeyVersion(context.Background(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to get key version details: %w", err)
	}

	return resp, nil
}
