package position

import "github.com/vytor/gridstats/internal/trend"

var (
	passingTrends = trend.MetricSet{
		{Key: "grades_pass", Label: "Passing Grade"},
		{Key: "grades_offense", Label: "Offense Grade"},
		{Key: "btt_rate", Label: "Big Time Throw %"},
		{Key: "accuracy_percent", Label: "Adjusted Completion %"},
		{Key: "ypa", Label: "Yards / Attempt"},
		{Key: "avg_depth_of_target", Label: "Avg Depth of Target"},
		{Key: "qb_rating", Label: "Passer Rating"},
		{Key: "avg_time_to_throw", Label: "Time to Throw"},
	}
	rushingTrends = trend.MetricSet{
		{Key: "grades_run", Label: "Rushing Grade"},
		{Key: "grades_offense", Label: "Offense Grade"},
		{Key: "elusive_rating", Label: "Elusive Rating"},
		{Key: "yco_attempt", Label: "Yards After Contact / Att"},
		{Key: "ypa", Label: "Yards / Carry"},
		{Key: "breakaway_percent", Label: "Breakaway %"},
		{Key: "grades_pass_route", Label: "Receiving Grade"},
	}
	receivingTrends = trend.MetricSet{
		{Key: "grades_pass_route", Label: "Receiving Grade"},
		{Key: "grades_offense", Label: "Offense Grade"},
		{Key: "yprr", Label: "Yards / Route Run"},
		{Key: "caught_percent", Label: "Catch %"},
		{Key: "contested_catch_rate", Label: "Contested Catch %"},
		{Key: "avg_depth_of_target", Label: "Avg Depth of Target"},
		{Key: "yards_after_catch_per_reception", Label: "YAC / Reception"},
		{Key: "targeted_qb_rating", Label: "Targeted Passer Rating"},
	}
	blockingTrends = trend.MetricSet{
		{Key: "grades_offense", Label: "Offense Grade"},
		{Key: "grades_pass_block", Label: "Pass Block Grade"},
		{Key: "grades_run_block", Label: "Run Block Grade"},
		{Key: "pbe", Label: "Pass Blocking Efficiency"},
	}
	defenseTrends = trend.MetricSet{
		{Key: "grades_defense", Label: "Defense Grade"},
		{Key: "grades_run_defense", Label: "Run Defense Grade"},
		{Key: "grades_pass_rush_defense", Label: "Pass Rush Grade"},
		{Key: "grades_coverage_defense", Label: "Coverage Grade"},
		{Key: "grades_tackle", Label: "Tackling Grade"},
		{Key: "pass_rush_win_rate", Label: "Pass Rush Win %"},
		{Key: "total_pressures", Label: "Pressures"},
		{Key: "stops", Label: "Stops"},
	}
)

var profiles = map[string]Profile{
	"QB": {
		Code:           "QB",
		Name:           "Quarterback",
		StatKind:       KindPassing,
		PercentileKind: KindPassing,
		TrendMetrics:   passingTrends,
		Columns: trend.MetricSet{
			{Key: "grades_pass", Label: "PASS"},
			{Key: "completions", Label: "CMP"},
			{Key: "attempts", Label: "ATT"},
			{Key: "yards", Label: "YDS"},
			{Key: "touchdowns", Label: "TD"},
			{Key: "interceptions", Label: "INT"},
			{Key: "ypa", Label: "Y/A"},
			{Key: "btt_rate", Label: "BTT%"},
			{Key: "twp_rate", Label: "TWP%"},
			{Key: "qb_rating", Label: "RTG"},
		},
		CompactColumns: trend.MetricSet{
			{Key: "grades_pass", Label: "PASS"},
			{Key: "yards", Label: "YDS"},
			{Key: "touchdowns", Label: "TD"},
			{Key: "interceptions", Label: "INT"},
		},
	},
	"RB": {
		Code:           "RB",
		Name:           "Running Back",
		StatKind:       KindRushing,
		PercentileKind: KindRushing,
		ReceivingDepth: true,
		TrendMetrics:   rushingTrends,
		Columns: trend.MetricSet{
			{Key: "grades_run", Label: "RUN"},
			{Key: "attempts", Label: "ATT"},
			{Key: "yards", Label: "YDS"},
			{Key: "touchdowns", Label: "TD"},
			{Key: "ypa", Label: "Y/C"},
			{Key: "yards_after_contact", Label: "YCO"},
			{Key: "avoided_tackles", Label: "MTF"},
			{Key: "fumbles", Label: "FUM"},
		},
		CompactColumns: trend.MetricSet{
			{Key: "grades_run", Label: "RUN"},
			{Key: "yards", Label: "YDS"},
			{Key: "touchdowns", Label: "TD"},
		},
	},
	"WR": {
		Code:           "WR",
		Name:           "Wide Receiver",
		StatKind:       KindReceiving,
		PercentileKind: KindReceiving,
		ReceivingDepth: true,
		TrendMetrics:   receivingTrends,
		Columns:        receivingColumns,
		CompactColumns: receivingCompactColumns,
	},
	"TE": {
		Code:           "TE",
		Name:           "Tight End",
		StatKind:       KindReceiving,
		PercentileKind: KindReceiving,
		ReceivingDepth: true,
		TrendMetrics:   receivingTrends,
		Columns:        receivingColumns,
		CompactColumns: receivingCompactColumns,
	},
	"OL": {
		Code:           "OL",
		Name:           "Offensive Line",
		StatKind:       KindBlocking,
		PercentileKind: KindBlocking,
		TrendMetrics:   blockingTrends,
		Columns: trend.MetricSet{
			{Key: "grades_offense", Label: "OFF"},
			{Key: "grades_pass_block", Label: "PBLK"},
			{Key: "grades_run_block", Label: "RBLK"},
			{Key: "snap_counts_offense", Label: "SNAPS"},
			{Key: "pressures_allowed", Label: "PRS"},
			{Key: "sacks_allowed", Label: "SCK"},
			{Key: "penalties", Label: "PEN"},
		},
		CompactColumns: trend.MetricSet{
			{Key: "grades_offense", Label: "OFF"},
			{Key: "pressures_allowed", Label: "PRS"},
			{Key: "sacks_allowed", Label: "SCK"},
		},
	},
	"DL": {
		Code:           "DL",
		Name:           "Defensive Line",
		StatKind:       KindDefense,
		PercentileKind: KindDefense,
		TrendMetrics:   defenseTrends,
		Columns:        frontColumns,
		CompactColumns: defenseCompactColumns,
	},
	"LB": {
		Code:           "LB",
		Name:           "Linebacker",
		StatKind:       KindDefense,
		PercentileKind: KindDefense,
		TrendMetrics:   defenseTrends,
		Columns:        frontColumns,
		CompactColumns: defenseCompactColumns,
	},
	"CB": {
		Code:           "CB",
		Name:           "Cornerback",
		StatKind:       KindDefense,
		PercentileKind: KindDefense,
		TrendMetrics:   defenseTrends,
		Columns:        coverageColumns,
		CompactColumns: defenseCompactColumns,
	},
	"S": {
		Code:           "S",
		Name:           "Safety",
		StatKind:       KindDefense,
		PercentileKind: KindDefense,
		TrendMetrics:   defenseTrends,
		Columns:        coverageColumns,
		CompactColumns: defenseCompactColumns,
	},
}

var (
	receivingColumns = trend.MetricSet{
		{Key: "grades_pass_route", Label: "RECV"},
		{Key: "targets", Label: "TGT"},
		{Key: "receptions", Label: "REC"},
		{Key: "yards", Label: "YDS"},
		{Key: "touchdowns", Label: "TD"},
		{Key: "yprr", Label: "YPRR"},
		{Key: "drops", Label: "DROP"},
		{Key: "yards_after_catch", Label: "YAC"},
	}
	receivingCompactColumns = trend.MetricSet{
		{Key: "grades_pass_route", Label: "RECV"},
		{Key: "receptions", Label: "REC"},
		{Key: "yards", Label: "YDS"},
		{Key: "touchdowns", Label: "TD"},
	}
	frontColumns = trend.MetricSet{
		{Key: "grades_defense", Label: "DEF"},
		{Key: "grades_pass_rush_defense", Label: "PRSH"},
		{Key: "grades_run_defense", Label: "RDEF"},
		{Key: "tackles", Label: "TKL"},
		{Key: "sacks", Label: "SCK"},
		{Key: "total_pressures", Label: "PRS"},
		{Key: "stops", Label: "STOP"},
		{Key: "missed_tackles", Label: "MISS"},
	}
	coverageColumns = trend.MetricSet{
		{Key: "grades_defense", Label: "DEF"},
		{Key: "grades_coverage_defense", Label: "COV"},
		{Key: "targets", Label: "TGT"},
		{Key: "receptions", Label: "REC"},
		{Key: "yards", Label: "YDS"},
		{Key: "interceptions", Label: "INT"},
		{Key: "pass_break_ups", Label: "PBU"},
		{Key: "tackles", Label: "TKL"},
	}
	defenseCompactColumns = trend.MetricSet{
		{Key: "grades_defense", Label: "DEF"},
		{Key: "tackles", Label: "TKL"},
		{Key: "stops", Label: "STOP"},
	}
)
