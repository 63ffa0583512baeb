// Package fitment defines the fit-status enumeration, its lookup tables,
// and the report types shared by Analyze and Recommend.
package fitment

import (
	"errors"

	"github.com/vponomar/fitweave/measure"
)

// Sentinel errors for fit analysis and size recommendation.
var (
	// ErrEmptyChart indicates that Recommend received no size candidates.
	ErrEmptyChart = errors.New("fitment: size chart is empty")
)

// Status classifies the ease percentage of a region. It is a closed tagged
// variant: the five values below are the only ones, and behavior hangs off
// the lookup tables, not type switches.
type Status int

const (
	// TooTight means percent ease < −5: the garment constricts the body.
	TooTight Status = iota

	// Tight means −5 ≤ percent < 2: wearable but snug.
	Tight

	// Perfect means 2 ≤ percent < 10: the intended fit window.
	Perfect

	// Loose means 10 ≤ percent < 20: relaxed fit.
	Loose

	// TooLoose means percent ≥ 20: the garment swamps the body.
	TooLoose
)

// statusNames maps Status to its wire/report spelling.
var statusNames = [...]string{
	TooTight: "too_tight",
	Tight:    "tight",
	Perfect:  "perfect",
	Loose:    "loose",
	TooLoose: "too_loose",
}

// String returns the snake_case spelling used in fit reports.
func (s Status) String() string {
	if s < TooTight || s > TooLoose {
		return "unknown"
	}

	return statusNames[s]
}

// statusScores is the size-recommendation score table.
var statusScores = [...]float64{
	TooTight: -10,
	Tight:    3,
	Perfect:  10,
	Loose:    5,
	TooLoose: -5,
}

// Score returns the recommendation score contribution of this status.
func (s Status) Score() float64 { return statusScores[s] }

// statusSeverity orders statuses by worseness: extremes are equally worst,
// moderates equally middle, perfect best.
var statusSeverity = [...]int{
	TooTight: 2,
	Tight:    1,
	Perfect:  0,
	Loose:    1,
	TooLoose: 2,
}

// severity returns the worseness rank of this status (higher is worse).
func (s Status) severity() int { return statusSeverity[s] }

// Extreme reports whether the status is one of the two dominating extremes.
func (s Status) Extreme() bool { return s == TooTight || s == TooLoose }

// Classify maps a percentage ease to a Status. It is a non-decreasing step
// function across the ordered boundary set {−5, 2, 10, 20}.
func Classify(percent float64) Status {
	switch {
	case percent < -5:
		return TooTight
	case percent < 2:
		return Tight
	case percent < 10:
		return Perfect
	case percent < 20:
		return Loose
	default:
		return TooLoose
	}
}

// Metric is the fit measurement of a single region.
type Metric struct {
	// Garment is the garment-side value in centimeters.
	Garment float64

	// Body is the body-side value in centimeters.
	Body float64

	// Difference is Garment − Body (the ease), in centimeters.
	Difference float64

	// Percent is 100 × Difference / Body.
	Percent float64

	// Status is the classification of Percent.
	Status Status
}

// Report is the outcome of analyzing one garment against one body.
// Region metrics are nil when either side of the comparison was absent
// (chest is always present — Analyze fails without it).
type Report struct {
	Overall Status

	Chest    *Metric
	Waist    *Metric
	Shoulder *Metric
	Length   *Metric

	// Recommendation is a human-readable summary: per-region issue phrases
	// for problematic statuses, or a positive confirmation.
	Recommendation string
}

// Size is one size-chart candidate for recommendation.
type Size struct {
	// Label is the chart name of the size ("S", "M", "44R", ...).
	Label string

	// Garment carries the candidate's measurements.
	Garment measure.Garment
}
