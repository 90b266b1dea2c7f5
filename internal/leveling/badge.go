package leveling

// Badge tier bands. Tiers 0-8 are named; past level 200 the tier keeps
// climbing by one every 50 levels so progression never caps out.
var tierBands = []struct {
	maxLevel int
	name     string
}{
	{10, "Bronze"},
	{20, "Iron"},
	{35, "Silver"},
	{50, "Gold"},
	{70, "Platinum"},
	{90, "Diamond"},
	{120, "Master"},
	{160, "Grandmaster"},
	{200, "Celestial"},
}

// BadgeTier returns the cosmetic badge tier for a level.
func BadgeTier(level int) int {
	for tier, band := range tierBands {
		if level <= band.maxLevel {
			return tier
		}
	}
	return len(tierBands) - 1 + (level-200)/50
}

// TierName returns the display name for a badge tier. Tiers beyond the
// named bands share the highest name.
func TierName(tier int) string {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(tierBands) {
		return tierBands[len(tierBands)-1].name
	}
	return tierBands[tier].name
}
