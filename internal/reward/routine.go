package reward

import (
	"math"

	"github.com/myrjola/hexcoach/internal/axis"
)

const (
	// DefaultBaseXP and DefaultBaseCoins price exercises that carry no reward of their own.
	DefaultBaseXP    = 50
	DefaultBaseCoins = 5

	// volumeUnit is the reps or seconds per set that earn exactly the base reward.
	volumeUnit = 10
)

// Item is one exercise of a routine as seen by the reward calculation.
type Item struct {
	Axis       axis.Axis
	Sets       int
	RepsOrTime int
	BaseXP     int
	BaseCoins  int
}

// Volume is the reward scaling factor of the item: sets times reps-or-time over ten.
func (it Item) Volume() float64 {
	return float64(it.Sets) * float64(it.RepsOrTime) / volumeUnit
}

// ForRoutine sums the volume-scaled reward of every item. Values are accumulated unrounded and rounded once at the
// end. Items without a valid axis count toward the totals only.
func ForRoutine(items []Item) Bundle {
	var xp, coins float64
	perAxis := make(map[axis.Axis]float64)
	for _, it := range items {
		base, baseCoins := it.BaseXP, it.BaseCoins
		if base <= 0 {
			base = DefaultBaseXP
		}
		if baseCoins <= 0 {
			baseCoins = DefaultBaseCoins
		}
		v := it.Volume()
		xp += float64(base) * v
		coins += float64(baseCoins) * v
		if it.Axis.Valid() {
			perAxis[it.Axis] += float64(base) * v
		}
	}

	out := Bundle{
		XP:        int64(math.Round(xp)),
		Coins:     int64(math.Round(coins)),
		XPPerAxis: make(map[axis.Axis]int64, len(perAxis)),
	}
	for a, v := range perAxis {
		out.XPPerAxis[a] = int64(math.Round(v))
	}
	return out
}
