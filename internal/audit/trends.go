package audit

import (
	"sort"
	"time"

	"github.com/jonathan/skill-auditor/internal/matching"
	"github.com/jonathan/skill-auditor/internal/types"
)

// TrendOptions are the tunable thresholds of the velocity analysis.
type TrendOptions struct {
	// ChangeThresholdPct is the percent change in mean per-period rate
	// beyond which a skill counts as rising (or, negated, falling).
	ChangeThresholdPct float64
	// MinMentions is the total mention floor below which no direction is
	// assigned regardless of the rate change.
	MinMentions int
}

// DefaultTrendOptions returns the standard thresholds.
func DefaultTrendOptions() TrendOptions {
	return TrendOptions{ChangeThresholdPct: 20, MinMentions: 20}
}

// Trends partitions the corpus into calendar-day periods by record
// timestamp, tallies per-period mention counts for every skill, and compares
// the mean rate of the recent half of the period range against the older
// half. A record mentions a skill at most once.
func Trends(records []types.TextRecord, compiled []matching.CompiledSkill, opts TrendOptions) *types.TrendReport {
	// period (day) -> skill -> mentions
	periodCounts := make(map[time.Time]map[string]int)
	totals := make(map[string]int)

	for _, rec := range records {
		day := rec.PostedAt.UTC().Truncate(24 * time.Hour)
		for _, skill := range compiled {
			if !matching.TestSkill(rec.Text, skill) {
				continue
			}
			if periodCounts[day] == nil {
				periodCounts[day] = make(map[string]int)
			}
			periodCounts[day][skill.Name]++
			totals[skill.Name]++
		}
	}

	periods := make([]time.Time, 0, len(periodCounts))
	for day := range periodCounts {
		periods = append(periods, day)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	report := &types.TrendReport{SampleSize: len(records), Periods: len(periods)}
	if len(periods) < 2 {
		return report
	}

	// Older half first, recent half second; the midpoint goes to the
	// recent half when the period count is odd.
	mid := len(periods) / 2
	older, recent := periods[:mid], periods[mid:]

	for _, skill := range compiled {
		total := totals[skill.Name]
		if total == 0 {
			continue
		}
		olderRate := meanRate(periodCounts, older, skill.Name)
		recentRate := meanRate(periodCounts, recent, skill.Name)

		trend := types.SkillTrend{
			Name:       skill.Name,
			Total:      total,
			OlderRate:  olderRate,
			RecentRate: recentRate,
			ChangePct:  percentChange(olderRate, recentRate),
			Direction:  types.TrendSteady,
		}
		if total >= opts.MinMentions {
			switch {
			case trend.ChangePct > opts.ChangeThresholdPct:
				trend.Direction = types.TrendRising
			case trend.ChangePct < -opts.ChangeThresholdPct:
				trend.Direction = types.TrendFalling
			}
		}
		report.Trends = append(report.Trends, trend)
	}

	sort.SliceStable(report.Trends, func(i, j int) bool {
		if report.Trends[i].ChangePct != report.Trends[j].ChangePct {
			return report.Trends[i].ChangePct > report.Trends[j].ChangePct
		}
		return report.Trends[i].Name < report.Trends[j].Name
	})
	return report
}

func meanRate(periodCounts map[time.Time]map[string]int, periods []time.Time, skill string) float64 {
	if len(periods) == 0 {
		return 0
	}
	sum := 0
	for _, day := range periods {
		sum += periodCounts[day][skill]
	}
	return float64(sum) / float64(len(periods))
}

// percentChange reports the rate change from older to recent. A skill with
// no older-half mentions but recent activity counts as a full +100% rise.
func percentChange(older, recent float64) float64 {
	if older == 0 {
		if recent == 0 {
			return 0
		}
		return 100
	}
	return (recent - older) / older * 100
}
