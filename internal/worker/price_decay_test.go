package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/borsibaar/barpos/internal/models"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/borsibaar/barpos/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type countingDecayer struct {
	calls atomic.Int32
	err   error
}

func (d *countingDecayer) DecayPrices(ctx context.Context) (int, error) {
	d.calls.Add(1)
	return 1, d.err
}

func TestPriceDecayJob_RunsOnInterval(t *testing.T) {
	decayer := &countingDecayer{}
	job := NewPriceDecayJob(decayer, 10*time.Millisecond)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return decayer.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	job.Stop()
	job.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestPriceDecayJob_StopsOnContextCancel(t *testing.T) {
	decayer := &countingDecayer{err: errors.New("database unavailable")}
	job := NewPriceDecayJob(decayer, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return decayer.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop")
	}
}

func TestPriceDecayJob_ZeroIntervalDisabled(t *testing.T) {
	decayer := &countingDecayer{}
	job := NewPriceDecayJob(decayer, 0)

	// Returns immediately instead of blocking.
	job.Start(context.Background())
	require.Zero(t, decayer.calls.Load())
}

func TestPriceDecayJob_RunOnceLowersPrices(t *testing.T) {
	db := testutil.NewDB(t)
	org := testutil.CreateOrganization(t, db, "Pub")
	product := testutil.CreateProduct(t, db, org, "Shot", true, "2.00", 5)
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Update("current_price", decimal.RequireFromString("2.50")).Error)

	job := NewPriceDecayJob(services.NewPricingService(repository.NewRepositories(db)), time.Minute)
	job.RunOnce(context.Background())

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, product.ID).Error)
	require.Equal(t, "2.40", reloaded.CurrentPrice.StringFixed(2))
}
