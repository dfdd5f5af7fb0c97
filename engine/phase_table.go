package engine

import "github.com/lixenwraith/popit/constants"

// LightCount returns how many slots are lit in the given phase
// Phases outside 1..MaxPhase fall back to the base count
func LightCount(phase int) int {
	switch {
	case phase >= 1 && phase <= 5:
		return 3
	case phase >= 6 && phase <= 10:
		return 4
	case phase >= 11 && phase <= 15:
		return 5
	case phase >= 16 && phase <= constants.MaxPhase:
		return 6
	default:
		return constants.BaseLightCount
	}
}
