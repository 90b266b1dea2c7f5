// Package leveling maps cumulative XP to levels and cosmetic badge tiers.
package leveling

import "github.com/taskquest/taskquest/internal/constants"

// Result holds the derived level fields for a cumulative XP total.
type Result struct {
	Level          int
	XPToNextLevel  int
	CurrentLevelXP int
}

// Calculate derives (level, xp-to-next-level, xp-into-level) from total XP.
// The threshold for completing a level starts at 100 and grows by x1.5
// (floored) after each level-up, so the schedule is 100, 150, 225, 337, ...
// Negative inputs are treated as zero. Pure and total: Calculate(0) is
// level 1 with 0/100.
func Calculate(totalXP int) Result {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	threshold := constants.BaseLevelThreshold
	remaining := totalXP

	for remaining >= threshold {
		remaining -= threshold
		level++
		threshold = threshold * constants.LevelThresholdGrowthNum / constants.LevelThresholdGrowthDenom
	}

	return Result{
		Level:          level,
		XPToNextLevel:  threshold,
		CurrentLevelXP: remaining,
	}
}
