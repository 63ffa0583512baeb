package fitment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vponomar/fitweave/fitment"
	"github.com/vponomar/fitweave/measure"
)

// TestClassify_Boundaries verifies the step function at and around each
// boundary of the ordered set {−5, 2, 10, 20}.
func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		percent float64
		want    fitment.Status
	}{
		{-20, fitment.TooTight},
		{-5.0001, fitment.TooTight},
		{-5, fitment.Tight},
		{0, fitment.Tight},
		{1.9999, fitment.Tight},
		{2, fitment.Perfect},
		{9.9999, fitment.Perfect},
		{10, fitment.Loose},
		{19.9999, fitment.Loose},
		{20, fitment.TooLoose},
		{55, fitment.TooLoose},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, fitment.Classify(c.percent), "percent=%v", c.percent)
	}
}

// TestClassify_Monotonic verifies that Classify is a non-decreasing step
// function: for any p1 < p2 the category index of p1 is ≤ that of p2.
func TestClassify_Monotonic(t *testing.T) {
	prev := fitment.TooTight
	for p := -30.0; p <= 30.0; p += 0.25 {
		cur := fitment.Classify(p)
		assert.GreaterOrEqual(t, int(cur), int(prev), "classification must not decrease at p=%v", p)
		prev = cur
	}
}

// TestAnalyze_MixedRegionsOverallLoose verifies a full four-region analysis:
// chest ≈ 7.37% (perfect), waist 17.5% (loose), shoulder ≈ 2.22% (perfect),
// length ≈ 2.94% (perfect) → overall loose, positive recommendation.
func TestAnalyze_MixedRegionsOverallLoose(t *testing.T) {
	b := measure.Body{Chest: 95, Waist: 80, ShoulderWidth: 45, TorsoLength: 68}
	g := measure.Garment{Chest: 102, Waist: 94, Length: 70, ShoulderWidth: 46}

	rep, err := fitment.Analyze(g, b)
	require.NoError(t, err)

	require.NotNil(t, rep.Chest)
	assert.InDelta(t, 7.368, rep.Chest.Percent, 1e-3)
	assert.Equal(t, fitment.Perfect, rep.Chest.Status)

	require.NotNil(t, rep.Waist)
	assert.InDelta(t, 17.5, rep.Waist.Percent, 1e-12)
	assert.Equal(t, fitment.Loose, rep.Waist.Status)

	require.NotNil(t, rep.Shoulder)
	assert.InDelta(t, 2.222, rep.Shoulder.Percent, 1e-3)
	assert.Equal(t, fitment.Perfect, rep.Shoulder.Status)

	require.NotNil(t, rep.Length)
	assert.Equal(t, fitment.Perfect, rep.Length.Status)

	assert.Equal(t, fitment.Loose, rep.Overall, "moderate loose beats perfect")
	assert.Equal(t, "Good fit for your measurements.", rep.Recommendation,
		"loose is not an issue phrase; recommendation stays positive")
}

// TestAnalyze_ExtremeDominates verifies that a too_tight region dominates a
// perfect one and surfaces in the recommendation.
func TestAnalyze_ExtremeDominates(t *testing.T) {
	b := measure.Body{Chest: 95, Waist: 90}
	g := measure.Garment{Chest: 100, Waist: 80} // waist −11.1% → too_tight

	rep, err := fitment.Analyze(g, b)
	require.NoError(t, err)

	assert.Equal(t, fitment.TooTight, rep.Overall)
	assert.Contains(t, rep.Recommendation, "waist is too tight")
}

// TestAnalyze_TightPhrase verifies that a merely tight region still emits an
// issue phrase while the overall status stays moderate.
func TestAnalyze_TightPhrase(t *testing.T) {
	b := measure.Body{Chest: 95}
	g := measure.Garment{Chest: 96} // 1.05% → tight

	rep, err := fitment.Analyze(g, b)
	require.NoError(t, err)

	assert.Equal(t, fitment.Tight, rep.Overall)
	assert.True(t, strings.Contains(rep.Recommendation, "chest is snug"), "got %q", rep.Recommendation)
}

// TestAnalyze_OptionalRegionsSkipped verifies that regions missing on either
// side are omitted, not estimated and not an error.
func TestAnalyze_OptionalRegionsSkipped(t *testing.T) {
	rep, err := fitment.Analyze(measure.Garment{Chest: 100}, measure.Body{Chest: 95, Waist: 80})
	require.NoError(t, err)

	assert.Nil(t, rep.Waist, "garment has no waist value")
	assert.Nil(t, rep.Shoulder)
	assert.Nil(t, rep.Length)
	require.NotNil(t, rep.Chest)
}

// TestAnalyze_MissingChest verifies the hard failure on an absent required
// measurement, on either side.
func TestAnalyze_MissingChest(t *testing.T) {
	_, err := fitment.Analyze(measure.Garment{Chest: 100}, measure.Body{})
	assert.ErrorIs(t, err, measure.ErrMissingChest)

	_, err = fitment.Analyze(measure.Garment{}, measure.Body{Chest: 95})
	assert.ErrorIs(t, err, measure.ErrMissingChest)
}

// TestAnalyze_Deterministic verifies purity: identical inputs yield
// identical reports across repeated calls.
func TestAnalyze_Deterministic(t *testing.T) {
	b := measure.Body{Chest: 95, Waist: 80, ShoulderWidth: 45, TorsoLength: 68}
	g := measure.Garment{Chest: 102, Waist: 94, Length: 70, ShoulderWidth: 46}

	first, err := fitment.Analyze(g, b)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := fitment.Analyze(g, b)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d", i)
	}
}
