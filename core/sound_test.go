package core

import "testing"

func TestSoundTypeString(t *testing.T) {
	tests := []struct {
		sound SoundType
		want  string
	}{
		{SoundRoundStart, "round_start"},
		{SoundPop, "pop"},
		{SoundPhaseAdvance, "phase_advance"},
		{SoundWin, "win"},
		{SoundLose, "lose"},
		{SoundTypeCount, "unknown"},
		{SoundType(-1), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.sound.String(); got != tt.want {
			t.Errorf("SoundType(%d).String() = %q, want %q", int(tt.sound), got, tt.want)
		}
	}
}
