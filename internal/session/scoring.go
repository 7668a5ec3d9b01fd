package session

// BasePoints is awarded for every correct answer.
const BasePoints = 10

// StreakBonus is added per consecutive correct answer before this one.
const StreakBonus = 2

// TimeBonusDivisor turns seconds left into bonus points in race mode.
const TimeBonusDivisor = 3

// BaseStreakThreshold is the streak length that triggers a celebration.
const BaseStreakThreshold = 5

// Points returns the score for one correct answer. streakBefore is the
// streak length before this answer is counted. The time bonus applies only
// in race mode.
func Points(timed bool, timeRemaining, streakBefore int) int {
	p := BasePoints + streakBefore*StreakBonus
	if timed && timeRemaining > 0 {
		p += timeRemaining / TimeBonusDivisor
	}
	return p
}

// NextStreakThreshold returns the next streak milestone above the current
// streak length.
func NextStreakThreshold(current int) int {
	return ((current / BaseStreakThreshold) + 1) * BaseStreakThreshold
}

// IsMilestone reports whether a streak length earns a celebration.
func IsMilestone(streak int) bool {
	return streak > 0 && streak%BaseStreakThreshold == 0
}
