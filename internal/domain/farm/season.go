package farm

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

var seasonCycle = [4]Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// SeasonForDay derives the season from the day counter. Seasons rotate every
// SeasonLengthDays; the southern hemisphere is offset by half a year.
func SeasonForDay(day int, latitude float64) Season {
	if day < 1 {
		day = 1
	}
	idx := ((day - 1) / SeasonLengthDays) % 4
	if latitude < 0 {
		idx = (idx + 2) % 4
	}
	return seasonCycle[idx]
}
