package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mggg/gerrychain-go/constraints"
	"github.com/mggg/gerrychain-go/partition"
)

func TestAllOfPassesWhenEveryConstraintPasses(t *testing.T) {
	v := constraints.AllOf(
		func(p *partition.Partition) constraints.Result { return constraints.Result{Verdict: constraints.Pass} },
		func(p *partition.Partition) constraints.Result { return constraints.Result{Verdict: constraints.Pass} },
	)
	require.Equal(t, constraints.Pass, v.Check(nil).Verdict)
}

func TestAllOfShortCircuitsOnFirstFail(t *testing.T) {
	var secondCalled bool
	v := constraints.AllOf(
		func(p *partition.Partition) constraints.Result {
			return constraints.Result{Verdict: constraints.Fail, Reason: "first failed"}
		},
		func(p *partition.Partition) constraints.Result {
			secondCalled = true
			return constraints.Result{Verdict: constraints.Pass}
		},
	)
	r := v.Check(nil)
	require.Equal(t, constraints.Fail, r.Verdict)
	require.Equal(t, "first failed", r.Reason)
	require.False(t, secondCalled, "a later constraint must not run once an earlier one fails")
}

func TestAllOfStopsOnIndeterminate(t *testing.T) {
	var secondCalled bool
	v := constraints.AllOf(
		func(p *partition.Partition) constraints.Result { return constraints.Result{Verdict: constraints.Indeterminate} },
		func(p *partition.Partition) constraints.Result {
			secondCalled = true
			return constraints.Result{Verdict: constraints.Pass}
		},
	)
	r := v.Check(nil)
	require.Equal(t, constraints.Indeterminate, r.Verdict)
	require.False(t, secondCalled)
}

func TestAllOfWithNoConstraintsPasses(t *testing.T) {
	v := constraints.AllOf()
	require.Equal(t, constraints.Pass, v.Check(nil).Verdict)
}
