package gamify

// Badge is one of five ordered tiers derived purely from a point total.
type Badge string

const (
	BadgeBronze   Badge = "BRONZE"
	BadgeSilver   Badge = "SILVER"
	BadgeGold     Badge = "GOLD"
	BadgePlatinum Badge = "PLATINUM"
	BadgeDiamond  Badge = "DIAMOND"
)

// badgeThresholds is ordered from highest tier to lowest; a badge is the
// first tier whose threshold is <= points.
var badgeThresholds = []struct {
	badge  Badge
	points int
}{
	{BadgeDiamond, 2500},
	{BadgePlatinum, 1000},
	{BadgeGold, 500},
	{BadgeSilver, 100},
	{BadgeBronze, 0},
}

// ClassifyBadge maps a point total to its badge tier.
// Pure and total; anything below the lowest threshold is BRONZE.
func ClassifyBadge(points int) Badge {
	for _, t := range badgeThresholds {
		if points >= t.points {
			return t.badge
		}
	}
	return BadgeBronze
}

func (b Badge) String() string { return string(b) }
