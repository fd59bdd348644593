package common

import (
	"context"
	"crypto/ecdsa"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"math/big"
	"os"
	"testing"

	"cloud.google.com/go/kms/apiv1/kmspb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	gax "github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGCPKeyManagementClient is a mock implementation of GCPKeyManagementClient
type MockGCPKeyManagementClient struct {
	mock.Mock
}

func (m *MockGCPKeyManagementClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockGCPKeyManagementClient) GetPublicKey(ctx context.Context, req *kmspb.GetPublicKeyRequest, opts ...gax.CallOption) (*kmspb.PublicKey, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.PublicKey), args.Error(1)
}

func (m *MockGCPKeyManagementClient) AsymmetricSign(ctx context.Context, req *kmspb.AsymmetricSignRequest, opts ...gax.CallOption) (*kmspb.AsymmetricSignResponse, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.AsymmetricSignResponse), args.Error(1)
}

func (m *MockGCPKeyManagementClient) GetCryptoKeyVersion(ctx context.Context, req *kmspb.GetCryptoKeyVersionRequest, opts ...gax.CallOption) (*kmspb.CryptoKeyVersion, error) {
	args := m.Called(ctx, req, opts)
	return args.Get(0).(*kmspb.CryptoKeyVersion), args.Error(1)
}

func asn1Bytes(r, s *big.Int) []byte {
	signature, _ := asn1.Marshal(struct {
		R, S *big.Int
	}{R: r, S: s})
	return signature
}

func publicKeyPem(t *testing.T, key *ecdsa.PrivateKey) string {
	der, err := asn1.Marshal(struct {
		AlgID pkix.AlgorithmIdentifier
		Key   asn1.BitString
	}{
		AlgID: pkix.AlgorithmIdentifier{Algorithm: oidPublicKeyECDSA},
		Key: asn1.BitString{
			Bytes:     crypto.FromECDSAPub(&key.PublicKey),
			BitLength: 65 * 8,
		},
	})
	assert.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

// kmsSignature signs hash the way KMS does, returning an ASN.1 (r, s) pair
// with s forced into the upper half of the curve order when highS is set.
func kmsSignature(t *testing.T, key *ecdsa.PrivateKey, hash []byte, highS bool) []byte {
	sig, err := crypto.Sign(hash, key)
	assert.NoError(t, err)

	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if highS {
		s = new(big.Int).Sub(crypto.S256().Params().N, s)
	}
	return asn1Bytes(r, s)
}

func TestNewGcpKmsSigner(t *testing.T) {
	key, _ := crypto.GenerateKey()

	mockClient := new(MockGCPKeyManagementClient)
	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return mockClient, nil
	}

	keyName := "test-key"
	mockClient.On("GetCryptoKeyVersion", mock.Anything, &kmspb.GetCryptoKeyVersionRequest{Name: keyName}, mock.Anything).
		Return(&kmspb.CryptoKeyVersion{Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_SECP256K1_SHA256}, nil)
	mockClient.On("GetPublicKey", mock.Anything, &kmspb.GetPublicKeyRequest{Name: keyName}, mock.Anything).
		Return(&kmspb.PublicKey{Pem: publicKeyPem(t, key)}, nil)

	signer, err := NewGcpKmsSigner(keyName)
	assert.NoError(t, err)
	assert.NotNil(t, signer)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), signer.EthAddress())

	mockClient.AssertExpectations(t)
}

func TestNewGcpKmsSigner_WrongAlgorithm(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return mockClient, nil
	}

	mockClient.On("GetCryptoKeyVersion", mock.Anything, mock.Anything, mock.Anything).
		Return(&kmspb.CryptoKeyVersion{Algorithm: kmspb.CryptoKeyVersion_EC_SIGN_P256_SHA256}, nil)

	signer, err := NewGcpKmsSigner("test-key")
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestNewGcpKmsSigner_ClientError(t *testing.T) {
	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return nil, errors.New("no credentials")
	}

	signer, err := NewGcpKmsSigner("test-key")
	assert.Error(t, err)
	assert.Nil(t, signer)
}

func TestGcpKmsSigner_EthSign(t *testing.T) {
	testCases := []struct {
		name  string
		highS bool
	}{
		{"low s", false},
		{"high s is normalized", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, _ := crypto.GenerateKey()
			mockClient := new(MockGCPKeyManagementClient)

			signer := &GcpKmsSigner{
				client:     mockClient,
				keyName:    "test-key",
				ethAddress: crypto.PubkeyToAddress(key.PublicKey),
			}

			data := []byte("example transaction data")
			hash := crypto.Keccak256(data)

			mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
				Return(&kmspb.AsymmetricSignResponse{Signature: kmsSignature(t, key, hash, tc.highS)}, nil)

			sig, err := signer.EthSign(data)
			assert.NoError(t, err)
			assert.Len(t, sig, 65)
			assert.True(t, sig[64] == 27 || sig[64] == 28)

			s := new(big.Int).SetBytes(sig[32:64])
			halfN := new(big.Int).Rsh(crypto.S256().Params().N, 1)
			assert.True(t, s.Cmp(halfN) <= 0)

			sig[64] -= 27
			pubKey, err := crypto.SigToPub(hash, sig)
			assert.NoError(t, err)
			assert.Equal(t, signer.EthAddress(), crypto.PubkeyToAddress(*pubKey))

			mockClient.AssertExpectations(t)
		})
	}
}

func TestGcpKmsSigner_EthSign_AddressMismatch(t *testing.T) {
	key, _ := crypto.GenerateKey()
	mockClient := new(MockGCPKeyManagementClient)

	signer := &GcpKmsSigner{
		client:     mockClient,
		keyName:    "test-key",
		ethAddress: common.HexToAddress("0x14BFf3BDb55E171Dc5af4B0F6F779752bC146C6E"),
	}

	data := []byte("example transaction data")
	mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
		Return(&kmspb.AsymmetricSignResponse{Signature: kmsSignature(t, key, crypto.Keccak256(data), false)}, nil)

	sig, err := signer.EthSign(data)
	assert.Error(t, err)
	assert.Nil(t, sig)
}

func TestGcpKmsSigner_EthSign_KMSError(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	signer := &GcpKmsSigner{client: mockClient, keyName: "test-key"}

	mockClient.On("AsymmetricSign", mock.Anything, mock.Anything, mock.Anything).
		Return((*kmspb.AsymmetricSignResponse)(nil), errors.New("permission denied"))

	sig, err := signer.EthSign([]byte("data"))
	assert.Error(t, err)
	assert.Nil(t, sig)
}

func TestGcpKmsSigner_Destroy(t *testing.T) {
	mockClient := new(MockGCPKeyManagementClient)
	signer := &GcpKmsSigner{
		client:  mockClient,
		keyName: "test-key",
	}

	mockClient.On("Close").Return(nil)

	signer.Destroy()
	mockClient.AssertExpectations(t)
}

func TestGcpKmsSigner_WithGCPKMS(t *testing.T) {
	keyName := os.Getenv("GCP_KMS_KEY_NAME")
	if keyName == "" {
		t.Skip("GCP KMS key name not set")
	}
	credentials := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credentials == "" {
		t.Skip("GCP credentials not set")
	}

	NewGCPKeyManagementClient = func(ctx context.Context) (GCPKeyManagementClient, error) {
		return newKMSClient(ctx)
	}

	signer, err := NewGcpKmsSigner(keyName)
	assert.NoError(t, err)

	sig, err := signer.EthSign([]byte("example transaction data"))
	assert.NoError(t, err)
	assert.NotNil(t, sig)
}
