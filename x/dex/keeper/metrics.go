package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/prometheus/client_golang/prometheus"

	"gamechain/x/dex/types"
)

// Metrics holds the exchange's prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	poolsCreated prometheus.Counter
	swaps        *prometheus.CounterVec
	liquidity    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		poolsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "pools_created_total",
			Help:      "Number of exchanges created.",
		}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "swaps_total",
			Help:      "Number of executed swaps by pool and input denom.",
		}, []string{"pool_id", "denom_in"}),
		liquidity: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: types.ModuleName,
			Name:      "liquidity_changes_total",
			Help:      "Number of liquidity deposits and withdrawals by pool.",
		}, []string{"pool_id", "action"}),
	}
	reg.MustRegister(m.poolsCreated, m.swaps, m.liquidity)
	return m
}

// CheckTx runs do not change state, so they are not counted.
func (m *Metrics) skip(ctx context.Context) bool {
	return m == nil || sdk.UnwrapSDKContext(ctx).IsCheckTx()
}

func (m *Metrics) poolCreated(ctx context.Context) {
	if m.skip(ctx) {
		return
	}
	m.poolsCreated.Inc()
}

func (m *Metrics) swapped(ctx context.Context, poolID uint64, denomIn string) {
	if m.skip(ctx) {
		return
	}
	m.swaps.WithLabelValues(strconv.FormatUint(poolID, 10), denomIn).Inc()
}

func (m *Metrics) liquidityChanged(ctx context.Context, poolID uint64, action string) {
	if m.skip(ctx) {
		return
	}
	m.liquidity.WithLabelValues(strconv.FormatUint(poolID, 10), action).Inc()
}
