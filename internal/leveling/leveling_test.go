package leveling

import "testing"

func TestCalculateZero(t *testing.T) {
	got := Calculate(0)
	want := Result{Level: 1, XPToNextLevel: 100, CurrentLevelXP: 0}
	if got != want {
		t.Errorf("Calculate(0) = %+v, want %+v", got, want)
	}
}

func TestCalculateExactBoundary(t *testing.T) {
	// Landing exactly on a threshold rolls over into the next level with
	// zero progress.
	got := Calculate(100)
	want := Result{Level: 2, XPToNextLevel: 150, CurrentLevelXP: 0}
	if got != want {
		t.Errorf("Calculate(100) = %+v, want %+v", got, want)
	}
}

func TestCalculateSchedule(t *testing.T) {
	// Threshold schedule: 100, 150, 225, 337, 505, ...
	tests := []struct {
		totalXP int
		want    Result
	}{
		{1, Result{Level: 1, XPToNextLevel: 100, CurrentLevelXP: 1}},
		{99, Result{Level: 1, XPToNextLevel: 100, CurrentLevelXP: 99}},
		{101, Result{Level: 2, XPToNextLevel: 150, CurrentLevelXP: 1}},
		{249, Result{Level: 2, XPToNextLevel: 150, CurrentLevelXP: 149}},
		{250, Result{Level: 3, XPToNextLevel: 225, CurrentLevelXP: 0}},
		{475, Result{Level: 4, XPToNextLevel: 337, CurrentLevelXP: 0}},
		{812, Result{Level: 5, XPToNextLevel: 505, CurrentLevelXP: 0}},
		{7500, Result{Level: 10, XPToNextLevel: 3829, CurrentLevelXP: 36}},
	}

	for _, tt := range tests {
		got := Calculate(tt.totalXP)
		if got != tt.want {
			t.Errorf("Calculate(%d) = %+v, want %+v", tt.totalXP, got, tt.want)
		}
	}
}

func TestCalculateNegativeClamped(t *testing.T) {
	if got := Calculate(-50); got != Calculate(0) {
		t.Errorf("Calculate(-50) = %+v, want same as Calculate(0)", got)
	}
}

func TestCalculateInvariants(t *testing.T) {
	// Progress into the level is always strictly below the next threshold,
	// and summing the thresholds for levels 1..level-1 plus the remainder
	// reconstructs the input.
	for totalXP := 0; totalXP <= 20000; totalXP += 7 {
		res := Calculate(totalXP)
		if res.CurrentLevelXP >= res.XPToNextLevel {
			t.Fatalf("Calculate(%d): currentLevelXP %d >= xpToNextLevel %d",
				totalXP, res.CurrentLevelXP, res.XPToNextLevel)
		}

		sum := 0
		threshold := 100
		for level := 1; level < res.Level; level++ {
			sum += threshold
			threshold = threshold * 3 / 2
		}
		if sum+res.CurrentLevelXP != totalXP {
			t.Fatalf("Calculate(%d): threshold sum %d + remainder %d != input",
				totalXP, sum, res.CurrentLevelXP)
		}
	}
}

func TestBadgeTier(t *testing.T) {
	tests := []struct {
		level int
		tier  int
	}{
		{1, 0},
		{10, 0},
		{11, 1},
		{20, 1},
		{35, 2},
		{50, 3},
		{70, 4},
		{90, 5},
		{120, 6},
		{160, 7},
		{200, 8},
		{249, 8},
		{250, 9},
		{300, 10},
	}

	for _, tt := range tests {
		if got := BadgeTier(tt.level); got != tt.tier {
			t.Errorf("BadgeTier(%d) = %d, want %d", tt.level, got, tt.tier)
		}
	}
}

func TestTierName(t *testing.T) {
	if got := TierName(0); got != "Bronze" {
		t.Errorf("TierName(0) = %q, want Bronze", got)
	}
	if got := TierName(8); got != "Celestial" {
		t.Errorf("TierName(8) = %q, want Celestial", got)
	}
	// Unnamed tiers past the bands reuse the highest name.
	if got := TierName(12); got != "Celestial" {
		t.Errorf("TierName(12) = %q, want Celestial", got)
	}
}
