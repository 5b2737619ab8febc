package world

import (
	"encoding/json"
	"testing"

	"github.com/cainem/hill-descent-sub001/fitness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBeforeAnyTrainingRunHasNoScores(t *testing.T) {
	w := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 10, TargetRegions: 2, Seed: 1}, sphereFn())
	snap := w.Snapshot()

	assert.Len(t, snap.Organisms, 10)
	assert.Nil(t, snap.BestParams)
	for _, o := range snap.Organisms {
		assert.Nil(t, o.Score)
		assert.Nil(t, o.Parent1)
		assert.Nil(t, o.Parent2)
		assert.False(t, o.Dead)
		assert.Len(t, o.Params, 1)
	}
	assert.Empty(t, snap.Regions)
}

func TestSnapshotAfterTrainingRunPopulatesScoresAndRegions(t *testing.T) {
	w := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 20, TargetRegions: 3, Seed: 1}, sphereFn())
	w.TrainingRun(fitness.None(0))

	snap := w.Snapshot()
	require.NotEmpty(t, snap.Regions)
	for _, o := range snap.Organisms {
		require.NotNil(t, o.Score)
		assert.NotEmpty(t, o.RegionKey)
	}
	for _, r := range snap.Regions {
		assert.NotEmpty(t, r.Key)
		assert.GreaterOrEqual(t, r.Count, 0)
		assert.GreaterOrEqual(t, r.Zone, 0)
	}
}

func TestSnapshotMarksOffspringParentage(t *testing.T) {
	w := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 20, TargetRegions: 3, Seed: 1}, sphereFn())
	for i := 0; i < 3; i++ {
		w.TrainingRun(fitness.None(0))
	}

	snap := w.Snapshot()
	foundOffspring := false
	for _, o := range snap.Organisms {
		if o.Parent1 != nil {
			foundOffspring = true
			break
		}
	}
	assert.True(t, foundOffspring, "expected at least one organism with recorded parentage after several epochs")
}

func TestSnapshotJSONRoundTrips(t *testing.T) {
	w := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 10, TargetRegions: 2, Seed: 1}, sphereFn())
	w.TrainingRun(fitness.None(0))

	raw, err := w.SnapshotJSON()
	require.NoError(t, err)

	var decoded StateSnapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, w.Snapshot().BestScore, decoded.BestScore)
	assert.Len(t, decoded.Organisms, len(w.Organisms()))
}
