package fitment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vponomar/fitweave/fitment"
	"github.com/vponomar/fitweave/measure"
)

// fitBody is the reference body used by the recommender tests.
var fitBody = measure.Body{Chest: 95, Waist: 80, ShoulderWidth: 45}

// fourSizeChart spans tight (S) through far too loose (XL) for fitBody.
func fourSizeChart() []fitment.Size {
	return []fitment.Size{
		{Label: "S", Garment: measure.Garment{Chest: 92, Waist: 78, Length: 66, ShoulderWidth: 44}},
		{Label: "M", Garment: measure.Garment{Chest: 102, Waist: 94, Length: 70, ShoulderWidth: 46}},
		{Label: "L", Garment: measure.Garment{Chest: 110, Waist: 102, Length: 74, ShoulderWidth: 48}},
		{Label: "XL", Garment: measure.Garment{Chest: 118, Waist: 110, Length: 78, ShoulderWidth: 50}},
	}
}

// TestRecommend_BestAndScore verifies the scoring formula on a known chart:
// M scores 2×5 + 10 + 5 + 10 = 35 (overall loose, chest/shoulder perfect,
// waist loose) and wins.
func TestRecommend_BestAndScore(t *testing.T) {
	rec, err := fitment.Recommend(fourSizeChart(), fitBody)
	require.NoError(t, err)

	assert.Equal(t, "M", rec.Best.Label)
	assert.InDelta(t, 35.0, rec.Best.Score, 1e-12)
	assert.Equal(t, fitment.Loose, rec.Best.Report.Overall)
}

// TestRecommend_AlternativesFiltered verifies that alternatives require a
// positive score and a non-extreme overall status: S (all-tight, score 12)
// qualifies, L (too_loose overall, score 0) and XL (negative) do not.
func TestRecommend_AlternativesFiltered(t *testing.T) {
	rec, err := fitment.Recommend(fourSizeChart(), fitBody)
	require.NoError(t, err)

	require.Len(t, rec.Alternatives, 1)
	assert.Equal(t, "S", rec.Alternatives[0].Label)
	assert.InDelta(t, 12.0, rec.Alternatives[0].Score, 1e-12)
}

// TestRecommend_DisplacedBestPreferred verifies the alternative ordering:
// when the lead changes during the scan, the displaced previous bests come
// first, most recently displaced at the front.
func TestRecommend_DisplacedBestPreferred(t *testing.T) {
	chart := []fitment.Size{
		// A: everything tight → 2×3+3+3+3 = 12.
		{Label: "A", Garment: measure.Garment{Chest: 96, Waist: 81, ShoulderWidth: 45.5}},
		// B: perfect chest/shoulder, loose waist → 2×5+10+5+10 = 35.
		{Label: "B", Garment: measure.Garment{Chest: 104, Waist: 88, ShoulderWidth: 46}},
		// C: all perfect → 2×10+10+10+10 = 50.
		{Label: "C", Garment: measure.Garment{Chest: 103, Waist: 86, ShoulderWidth: 46.5}},
	}

	rec, err := fitment.Recommend(chart, fitBody)
	require.NoError(t, err)

	assert.Equal(t, "C", rec.Best.Label)
	require.Len(t, rec.Alternatives, 2)
	assert.Equal(t, "B", rec.Alternatives[0].Label, "most recently displaced best first")
	assert.Equal(t, "A", rec.Alternatives[1].Label)
}

// TestRecommend_TieFirstWins verifies that equal scores resolve to the
// earlier chart entry, keeping recommendations deterministic.
func TestRecommend_TieFirstWins(t *testing.T) {
	g := measure.Garment{Chest: 103, Waist: 86, ShoulderWidth: 46.5}
	chart := []fitment.Size{
		{Label: "first", Garment: g},
		{Label: "second", Garment: g},
	}

	rec, err := fitment.Recommend(chart, fitBody)
	require.NoError(t, err)

	assert.Equal(t, "first", rec.Best.Label)
}

// TestRecommend_EmptyChart verifies the sentinel error on an empty chart.
func TestRecommend_EmptyChart(t *testing.T) {
	_, err := fitment.Recommend(nil, fitBody)
	assert.ErrorIs(t, err, fitment.ErrEmptyChart)
}

// TestRecommend_EstimatesAbsentRegions verifies that a chest-only chart entry
// is scored with materialized estimates: waist = body waist + 0.75 × chest
// ease, shoulder = body shoulder + min(0.4 × chest ease, 3 cm). The estimates
// land on the detached copy and surface via Scored.Garment; the caller's
// chart keeps its absent (zero) fields.
func TestRecommend_EstimatesAbsentRegions(t *testing.T) {
	chart := []fitment.Size{{Label: "M", Garment: measure.Garment{Chest: 102}}}

	rec, err := fitment.Recommend(chart, fitBody)
	require.NoError(t, err)

	// chest ease 7 cm → waist 80 + 5.25, shoulder 45 + min(2.8, 3)
	assert.InDelta(t, 85.25, rec.Best.Garment.Waist, 1e-12)
	assert.InDelta(t, 47.8, rec.Best.Garment.ShoulderWidth, 1e-12)

	// the estimated regions participate in scoring: all perfect,
	// 2×10 + 10 + 10 + 10
	require.NotNil(t, rec.Best.Report.Waist)
	require.NotNil(t, rec.Best.Report.Shoulder)
	assert.InDelta(t, 50.0, rec.Best.Score, 1e-12)

	assert.Equal(t, 0.0, chart[0].Garment.Waist, "estimates must not leak into the caller's chart")
	assert.Equal(t, 0.0, chart[0].Garment.ShoulderWidth)
}

// TestRecommend_ChartUntouched verifies the recommender never mutates the
// caller's chart (it works on a deep copy).
func TestRecommend_ChartUntouched(t *testing.T) {
	chart := fourSizeChart()
	want := fourSizeChart()

	_, err := fitment.Recommend(chart, fitBody)
	require.NoError(t, err)

	assert.Equal(t, want, chart, "caller-owned chart must stay untouched")
}

// TestRecommend_Deterministic verifies purity across repeated invocations.
func TestRecommend_Deterministic(t *testing.T) {
	first, err := fitment.Recommend(fourSizeChart(), fitBody)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := fitment.Recommend(fourSizeChart(), fitBody)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d", i)
	}
}
