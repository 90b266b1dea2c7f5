package artifacts

import "testing"

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func TestUnlockedThresholdEdge(t *testing.T) {
	below := UnlockedIDs(Stats{TasksCompleted: 99})
	if contains(below, "architect_emblem") {
		t.Error("architect_emblem unlocked at 99 tasks, want locked")
	}

	at := UnlockedIDs(Stats{TasksCompleted: 100})
	if !contains(at, "architect_emblem") {
		t.Error("architect_emblem locked at 100 tasks, want unlocked")
	}
}

func TestUnlockedByStat(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		id    string
	}{
		{"habit streak", Stats{MaxHabitStreak: 30}, "discipline_core"},
		{"checklists", Stats{ChecklistsCompleted: 250}, "chronicle_relic"},
		{"total xp", Stats{TotalXP: 7500}, "ascendant_fragment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := UnlockedIDs(tt.stats)
			if !contains(ids, tt.id) {
				t.Errorf("stats %+v: %s locked, want unlocked", tt.stats, tt.id)
			}
			if len(ids) != 1 {
				t.Errorf("stats %+v: unlocked %v, want only %s", tt.stats, ids, tt.id)
			}
		})
	}
}

func TestUnlockedEmptyStats(t *testing.T) {
	if ids := UnlockedIDs(Stats{}); len(ids) != 0 {
		t.Errorf("fresh stats unlocked %v, want none", ids)
	}
}

func TestUnlockedIdempotent(t *testing.T) {
	stats := Stats{TotalXP: 10000, TasksCompleted: 150, ChecklistsCompleted: 300, MaxHabitStreak: 45}
	first := UnlockedIDs(stats)
	second := UnlockedIDs(stats)
	if len(first) != len(Catalog) || len(second) != len(first) {
		t.Errorf("re-derivation changed: first %v, second %v", first, second)
	}
}
