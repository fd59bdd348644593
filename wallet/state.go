package wallet

import (
	"sync"

	"github.com/dan13ram/scout-mint-validator/models"
)

// PurchaseSnapshot is a point-in-time copy of a PurchaseState.
type PurchaseSnapshot struct {
	IsExecuting      bool
	IsSaving         bool
	HasSucceeded     bool
	SavedTransaction bool
	PurchaseSuccess  bool
	TxHash           string
	Saved            *models.SaveTransactionResult
	Checked          *models.CheckTransactionResult
	Error            error
}

// PurchaseState tracks one purchase interaction. It is safe for concurrent
// use; create one per purchase and pass it to the orchestrator.
type PurchaseState struct {
	mu    sync.RWMutex
	state PurchaseSnapshot
}

func (s *PurchaseState) Snapshot() PurchaseSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// ClearPurchaseSuccess hides the success notice once it has been shown.
func (s *PurchaseState) ClearPurchaseSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.PurchaseSuccess = false
}

func (s *PurchaseState) setExecuting(executing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsExecuting = executing
}

func (s *PurchaseState) setSaving(saving bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsSaving = saving
}

func (s *PurchaseState) markSent(txHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.TxHash = txHash
	s.state.PurchaseSuccess = true
}

func (s *PurchaseState) markSaved(result models.SaveTransactionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Saved = &result
	s.state.SavedTransaction = true
	s.state.Error = nil
}

func (s *PurchaseState) markChecked(result models.CheckTransactionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Checked = &result
	s.state.HasSucceeded = true
	s.state.Error = nil
}

func (s *PurchaseState) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Error = err
}

func NewPurchaseState() *PurchaseState {
	return &PurchaseState{}
}
