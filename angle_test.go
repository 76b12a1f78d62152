package watchface

import "testing"

func TestComputeAnglesScenarios(t *testing.T) {
	tests := []struct {
		name   string
		sample TimeSample
		want   AngleSet
	}{
		{
			name:   "midnight",
			sample: TimeSample{},
			want:   AngleSet{},
		},
		{
			name:   "quarter past three",
			sample: TimeSample{Hour: 3, Minute: 15, Second: 30},
			want: AngleSet{
				Second: FullCircle / 2,
				Minute: FullCircle / 4,
				Hour:   FullCircle * 19 / 72,
			},
		},
		{
			name:   "afternoon uses twelve hour dial",
			sample: TimeSample{Hour: 15, Minute: 15, Second: 30},
			want: AngleSet{
				Second: FullCircle / 2,
				Minute: FullCircle / 4,
				Hour:   FullCircle * 19 / 72,
			},
		},
		{
			name:   "noon",
			sample: TimeSample{Hour: 12},
			want:   AngleSet{},
		},
	}
	for _, tt := range tests {
		if got := ComputeAngles(tt.sample); got != tt.want {
			t.Errorf("%s: ComputeAngles = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestSecondAngle(t *testing.T) {
	prev := int32(-1)
	for sec := 0; sec < 60; sec++ {
		got := ComputeAngles(TimeSample{Second: sec}).Second
		if want := int32(FullCircle * sec / 60); got != want {
			t.Errorf("second %d: angle %d, want %d", sec, got, want)
		}
		if got <= prev {
			t.Errorf("second %d: angle %d not after %d", sec, got, prev)
		}
		if got < 0 || got >= FullCircle {
			t.Errorf("second %d: angle %d out of range", sec, got)
		}
		prev = got
	}
}

func TestHourAngleSteps(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			got := ComputeAngles(TimeSample{Hour: hour, Minute: minute}).Hour
			block := ComputeAngles(TimeSample{Hour: hour, Minute: minute / 10 * 10}).Hour
			if got != block {
				t.Fatalf("%02d:%02d: hour angle %d, want %d (start of block)", hour, minute, got, block)
			}
			if minute > 0 && minute%10 == 0 {
				before := ComputeAngles(TimeSample{Hour: hour, Minute: minute - 1}).Hour
				if before >= got {
					t.Errorf("%02d:%02d: hour angle did not advance (%d -> %d)", hour, minute, before, got)
				}
			}
		}
	}
}
