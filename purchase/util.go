package purchase

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dan13ram/scout-mint-validator/common"
	"github.com/dan13ram/scout-mint-validator/models"
)

var usdcUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(common.USDCDecimals), nil)

func validationError(message string) error {
	return common.NewError(common.ErrorKindValidation, message, nil)
}

// ValidateSaveInput checks a save request. A zero destination chain defaults
// to builderChainID; any other destination must match it.
func ValidateSaveInput(input *models.SaveTransactionInput, builderChainID int64) error {
	if input.ScoutID == "" {
		return validationError("scoutId is required")
	}
	if input.WalletAddress == "" {
		return validationError("walletAddress is required")
	}
	if strings.TrimSpace(input.SourceChainTxHash) == "" {
		return validationError("sourceChainTxHash is required")
	}
	if input.SourceChainID <= 0 {
		return validationError("sourceChainId is required")
	}
	if input.DestinationChainID == 0 {
		input.DestinationChainID = builderChainID
	}
	if builderChainID != 0 && input.DestinationChainID != builderChainID {
		return validationError("destinationChainId must be the builder NFT chain")
	}
	if input.BuilderID == "" {
		return validationError("builderId is required")
	}
	if input.TokenID < 0 {
		return validationError("tokenId must not be negative")
	}
	if input.TokenAmount < 1 {
		return validationError("tokenAmount must be at least 1")
	}
	price, ok := new(big.Int).SetString(input.QuotedPrice, 10)
	if !ok || price.Sign() < 0 {
		return validationError("quotedPrice must be a non-negative integer")
	}
	if !price.IsInt64() {
		return validationError("quotedPrice is out of range")
	}
	return nil
}

// FindPendingTransaction loads a record by its hex id.
func FindPendingTransaction(id string) (*models.PendingTransaction, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, validationError("invalid pendingTransactionId")
	}
	return findPendingTransaction(objectID)
}

func CreatePendingTransaction(input models.SaveTransactionInput, now time.Time) models.PendingTransaction {
	return models.PendingTransaction{
		ScoutID:                input.ScoutID,
		WalletAddress:          input.WalletAddress,
		SourceChainID:          input.SourceChainID,
		DestinationChainID:     input.DestinationChainID,
		SourceChainTxHash:      strings.TrimSpace(input.SourceChainTxHash),
		DestinationChainTxHash: "",
		Status:                 models.StatusPending,
		TokenAmount:            input.TokenAmount,
		QuotedPrice:            input.QuotedPrice,
		QuotedPriceCurrency:    input.QuotedPriceCurrency,
		TokenID:                input.TokenID,
		BuilderID:              input.BuilderID,
		ContractAddress:        input.ContractAddress,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

var ErrPointsOutOfRange = errors.New("points out of range")

// PurchasePoints converts a quoted USDC price in base units to points,
// rounding down. Prices that are not positive integers are worth nothing.
func PurchasePoints(quotedPrice string, pointsPerUSDC int64) (int64, error) {
	price, ok := new(big.Int).SetString(quotedPrice, 10)
	if !ok || price.Sign() <= 0 {
		return 0, nil
	}
	p := new(big.Int).Mul(price, big.NewInt(pointsPerUSDC))
	p.Quo(p, usdcUnit)
	if !p.IsInt64() {
		return 0, fmt.Errorf("quoted price %s: %w", quotedPrice, ErrPointsOutOfRange)
	}
	return p.Int64(), nil
}

// BuilderShare is sharePercent of total, rounding down. sharePercent is
// between 0 and 100 so the result never exceeds total.
func BuilderShare(total int64, sharePercent int64) int64 {
	p := new(big.Int).Mul(big.NewInt(total), big.NewInt(sharePercent))
	return p.Quo(p, big.NewInt(100)).Int64()
}

func resultOf(tx *models.PendingTransaction) models.CheckTransactionResult {
	return models.CheckTransactionResult{
		Status:                 tx.Status,
		DestinationChainTxHash: tx.DestinationChainTxHash,
	}
}
