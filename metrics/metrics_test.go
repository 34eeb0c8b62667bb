package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/homier/probemap"
)

func TestCollector(t *testing.T) {
	m := probemap.MustNew[string, int](probemap.WithCapacity[string](4))

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, m.Set(k, 1))
	}

	require.True(t, m.Delete("a"))

	c := NewCollector("test", prometheus.Labels{"table": "users"}, m)

	expected := `
# HELP test_probemap_capacity Number of slots in the backing array
# TYPE test_probemap_capacity gauge
test_probemap_capacity{table="users"} 8
# HELP test_probemap_fill_ratio Ratio of stored keys to capacity
# TYPE test_probemap_fill_ratio gauge
test_probemap_fill_ratio{table="users"} 0.25
# HELP test_probemap_resizes_total Total number of resizes
# TYPE test_probemap_resizes_total counter
test_probemap_resizes_total{table="users"} 1
# HELP test_probemap_size Number of keys stored
# TYPE test_probemap_size gauge
test_probemap_size{table="users"} 2
# HELP test_probemap_tombstones Number of slots holding a tombstone
# TYPE test_probemap_tombstones gauge
test_probemap_tombstones{table="users"} 1
`

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}

func TestCollector_ZeroValue(t *testing.T) {
	var m probemap.Map[int, int]

	c := NewCollector("zero", nil, &m)

	expected := `
# HELP zero_probemap_fill_ratio Ratio of stored keys to capacity
# TYPE zero_probemap_fill_ratio gauge
zero_probemap_fill_ratio 0
`

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "zero_probemap_fill_ratio"))
}

func TestCollector_Register(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()

	s := probemap.MustNewSet[int]()
	require.NoError(t, reg.Register(NewCollector("", nil, s)))

	_, err := s.Add(1)
	require.NoError(t, err)

	require.Equal(t, 5, testutil.CollectAndCount(NewCollector("", nil, s)))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 5)

	for _, mf := range families {
		if mf.GetName() == "probemap_size" {
			require.Equal(t, 1.0, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}
}
