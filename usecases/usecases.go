package usecases

import (
	"errors"
	"time"

	"cafe-ledger/apperrors"
	"cafe-ledger/entities"
	"cafe-ledger/metrics"
	"cafe-ledger/repositories"

	"go.uber.org/zap"
)

// SaleNotifier is told about every committed sale. item is nil for manual sales.
type SaleNotifier interface {
	SaleRecorded(sale entities.Sale, item *entities.InventoryItem)
}

// CafeUseCase holds the ledger business rules. It keeps no entity state
// between calls; everything is read from and written to the store.
type CafeUseCase struct {
	store    repositories.Store
	log      *zap.Logger
	metrics  *metrics.Metrics
	notifier SaleNotifier
	now      func() time.Time
}

type Option func(*CafeUseCase)

func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *CafeUseCase) { uc.metrics = m }
}

func WithNotifier(n SaleNotifier) Option {
	return func(uc *CafeUseCase) { uc.notifier = n }
}

// WithClock overrides the clock used to date purchase sales.
func WithClock(now func() time.Time) Option {
	return func(uc *CafeUseCase) { uc.now = now }
}

func NewCafeUseCase(store repositories.Store, log *zap.Logger, opts ...Option) *CafeUseCase {
	uc := &CafeUseCase{
		store: store,
		log:   log.Named("usecases"),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// fail converts err into the *apperrors.Error returned to callers and
// records it. Anything that is not already a rule failure is a storage error.
func (uc *CafeUseCase) fail(op string, err error) error {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.Storage(err)
	}
	if appErr.Kind == apperrors.StorageError {
		uc.log.Error(op+" failed", zap.Error(err))
	} else {
		uc.log.Warn(op+" rejected",
			zap.String("kind", string(appErr.Kind)),
			zap.String("reason", appErr.Message),
		)
	}
	uc.metrics.RuleFailure(string(appErr.Kind))
	return appErr
}

func (uc *CafeUseCase) saleRecorded(sale entities.Sale, item *entities.InventoryItem) {
	uc.metrics.SaleRecorded(sale.Amount)
	if uc.notifier != nil {
		uc.notifier.SaleRecorded(sale, item)
	}
}
