package points

import (
	"fmt"
	"time"

	"github.com/dan13ram/scout-mint-validator/models"
)

// Season returns the ISO week containing t, formatted as YYYY-Www.
func Season(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// NFTPurchaseSource is the receipt source key for a purchase settled by txHash.
func NFTPurchaseSource(txHash string) string {
	return fmt.Sprintf("%s:%s", models.PointsEventNFTPurchase, txHash)
}

// claimLockResource covers every season since a claim sums all of them.
func claimLockResource(userID string) string {
	return fmt.Sprintf("claim:%s", userID)
}
