package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lnskit/lnskit/heuristic"
	"github.com/lnskit/lnskit/pool"
)

func TestDefaultOptionsValid(t *testing.T) {
	opts := heuristic.DefaultOptions()
	require.NoError(t, opts.Validate())

	require.Equal(t, heuristic.StrategyPolishing, opts.Strategy)
	require.Zero(t, opts.Frequency)
	require.InDelta(t, pool.DefaultEpsilon, opts.Eps, 0)
	require.Equal(t, heuristic.DefaultNumMutations, opts.NumMutations)
	require.Equal(t, heuristic.DefaultNumRecombinations, opts.NumRecombinations)
	require.EqualValues(t, heuristic.DefaultSubMIPNodesLimit, opts.SubMIPNodesLimit)
}

func TestOptionsValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*heuristic.Options)
	}{
		{"negative eps", func(o *heuristic.Options) { o.Eps = -1e-9 }},
		{"negative mutations", func(o *heuristic.Options) { o.NumMutations = -1 }},
		{"negative recombinations", func(o *heuristic.Options) { o.NumRecombinations = -1 }},
		{"fraction above one", func(o *heuristic.Options) { o.FixingFraction = 1.5 }},
		{"negative fraction", func(o *heuristic.Options) { o.FixingFraction = -0.1 }},
		{"offset init above one", func(o *heuristic.Options) { o.OffsetInit = 2 }},
		{"offset reduction above one", func(o *heuristic.Options) { o.OffsetReduction = 1.1 }},
		{"offset minimum negative", func(o *heuristic.Options) { o.OffsetMinimum = -0.5 }},
		{"negative iterations", func(o *heuristic.Options) { o.Iterations = -3 }},
		{"window edge above one", func(o *heuristic.Options) { o.SubMIPMax = 1.2 }},
		{"inverted window", func(o *heuristic.Options) { o.SubMIPMin = 0.7; o.SubMIPMax = 0.3 }},
		{"bias offset above one", func(o *heuristic.Options) { o.Offset = 1.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := heuristic.DefaultOptions()
			tc.mutate(&opts)
			require.ErrorIs(t, opts.Validate(), heuristic.ErrOptionRange)
		})
	}

	t.Run("unknown strategy", func(t *testing.T) {
		opts := heuristic.DefaultOptions()
		opts.Strategy = heuristic.Strategy(42)
		require.ErrorIs(t, opts.Validate(), heuristic.ErrUnknownStrategy)
	})
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []heuristic.Strategy{
		heuristic.StrategyNone,
		heuristic.StrategyPolishing,
		heuristic.StrategyBiasedRecombination,
		heuristic.StrategyVendor,
	} {
		parsed, err := heuristic.ParseStrategy(s.String())
		require.NoError(t, err)
		require.Equal(t, s, parsed)
	}

	_, err := heuristic.ParseStrategy("simulated-annealing")
	require.ErrorIs(t, err, heuristic.ErrUnknownStrategy)

	require.Equal(t, "unknown", heuristic.Strategy(42).String())
}
