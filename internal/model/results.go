package model

// ---- Aggregated results ----
//
// Every result is rebuilt from the current shots and rounds on each call.
// Pointer fields are nil when no qualifying sample exists.

// HistogramBucket counts samples in [Start, End), or [Start, End] for the last bucket.
type HistogramBucket struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
	Label string  `json:"label"`
}

// NumericSummary describes one numeric shot field.
type NumericSummary struct {
	Average   float64           `json:"average"`
	Median    float64           `json:"median"`
	Min       float64           `json:"min"`
	Max       float64           `json:"max"`
	StdDev    float64           `json:"std_dev"` // population
	Count     int               `json:"count"`
	Histogram []HistogramBucket `json:"histogram"`
}

// ElevationSummary splits elevation-bearing shots into uphill, flat and downhill bands.
type ElevationSummary struct {
	AvgElevationChange  float64  `json:"avg_elevation_change"`
	MaxUphill           float64  `json:"max_uphill"`
	MaxDownhill         float64  `json:"max_downhill"`
	UphillAvgDistance   *float64 `json:"uphill_avg_distance"`
	FlatAvgDistance     *float64 `json:"flat_avg_distance"`
	DownhillAvgDistance *float64 `json:"downhill_avg_distance"`
}

// DistributionEntry is one value of a distribution with its count and share.
type DistributionEntry[T Category] struct {
	Value    T       `json:"value"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
}

// Distribution is the frequency table of one categorical attribute,
// sorted by count descending.
type Distribution[T Category] struct {
	Entries []DistributionEntry[T] `json:"entries"`
	Total   int                    `json:"total"`
}

// ClubSummary is the distance spread of one club.
type ClubSummary struct {
	Club        string  `json:"club"`
	AvgDistance float64 `json:"avg_distance"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Count       int     `json:"count"`
	StdDev      float64 `json:"std_dev"`
}

// ClubUsage is how often one club was hit.
type ClubUsage struct {
	Club     string  `json:"club"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
}

// TrendResult compares the five most recent rounds with the five before them.
type TrendResult struct {
	RecentPureStrikeRate *float64 `json:"recent_pure_strike_rate"`
	PriorPureStrikeRate  *float64 `json:"prior_pure_strike_rate"`
	RecentStraightRate   *float64 `json:"recent_straight_rate"`
	PriorStraightRate    *float64 `json:"prior_straight_rate"`
	RecentAvgDistance    *float64 `json:"recent_avg_distance"`
	PriorAvgDistance     *float64 `json:"prior_avg_distance"`
	ComparisonClub       string   `json:"comparison_club,omitempty"`
	HasEnoughData        bool     `json:"has_enough_data"`
}

// WeaknessItem is one detected area for improvement. Severity is in [0, 1].
type WeaknessItem struct {
	Label    string  `json:"label"`
	Detail   string  `json:"detail"`
	Severity float64 `json:"severity"`
}

// Dashboard is the unfiltered overview of every analysed shot.
type Dashboard struct {
	TotalShots    int `json:"total_shots"`
	TotalRounds   int `json:"total_rounds"`
	UniqueCourses int `json:"unique_courses"`

	MostUsedClub string      `json:"most_used_club,omitempty"`
	ClubUsage    []ClubUsage `json:"club_usage"`

	PureStrikeRate        *float64 `json:"pure_strike_rate"`
	StraightRate          *float64 `json:"straight_rate"`
	OnPinRate             *float64 `json:"on_pin_rate"`
	FairwayHitRate        *float64 `json:"fairway_hit_rate"`
	GreenInRegulationRate *float64 `json:"green_in_regulation_rate"`

	Trend                *TrendResult   `json:"trend"`
	Weaknesses           []WeaknessItem `json:"weaknesses"`
	ClubDistanceOverview []ClubSummary  `json:"club_distance_overview"`
}

// ShotAnalysis is the detail view over a filtered subset of shots.
// A distribution is nil when its attribute has no samples or is itself
// an active filter.
type ShotAnalysis struct {
	FilteredCount int `json:"filtered_count"`
	TotalCount    int `json:"total_count"`

	DistanceStats  *NumericSummary   `json:"distance_stats"`
	ElevationStats *ElevationSummary `json:"elevation_stats"`

	ClubDirection     *Distribution[ClubDirection]     `json:"club_direction,omitempty"`
	BallDirection     *Distribution[BallDirection]     `json:"ball_direction,omitempty"`
	Lie               *Distribution[Lie]               `json:"lie,omitempty"`
	LieDirection      *Distribution[LieDirection]      `json:"lie_direction,omitempty"`
	ShotType          *Distribution[ShotType]          `json:"shot_type,omitempty"`
	Strike            *Distribution[Strike]            `json:"strike,omitempty"`
	MentalState       *Distribution[MentalState]       `json:"mental_state,omitempty"`
	BallFlight        *Distribution[BallFlight]        `json:"ball_flight,omitempty"`
	DirectionToTarget *Distribution[DirectionToTarget] `json:"direction_to_target,omitempty"`
	DistanceToTarget  *Distribution[DistanceToTarget]  `json:"distance_to_target,omitempty"`
	WindDirection     *Distribution[WindDirection]     `json:"wind_direction,omitempty"`
	WindStrength      *Distribution[WindStrength]      `json:"wind_strength,omitempty"`
	FairwayHit        *Distribution[FairwayHit]        `json:"fairway_hit,omitempty"`
	GreenInRegulation *Distribution[GreenInRegulation] `json:"green_in_regulation,omitempty"`

	ClubStats []ClubSummary `json:"club_stats"`
}
