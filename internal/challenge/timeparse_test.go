package challenge

import "testing"

func TestParseTimeSpec(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantHour int
		wantMin  int
		wantTZ   string
		wantErr  bool
	}{
		{
			name:     "24h clock defaults to UTC",
			spec:     "21:00",
			wantHour: 21,
			wantTZ:   "UTC",
		},
		{
			name:     "12h clock defaults to UTC",
			spec:     "9:00 PM",
			wantHour: 21,
			wantTZ:   "UTC",
		},
		{
			name:     "24h clock with timezone",
			spec:     "21:30 America/St_Johns",
			wantHour: 21,
			wantMin:  30,
			wantTZ:   "America/St_Johns",
		},
		{
			name:     "12h clock with timezone",
			spec:     "9:00 PM America/St_Johns",
			wantHour: 21,
			wantTZ:   "America/St_Johns",
		},
		{
			name:     "lowercase meridiem",
			spec:     "9:15 am",
			wantHour: 9,
			wantMin:  15,
			wantTZ:   "UTC",
		},
		{
			name:     "midnight",
			spec:     "12:00 AM",
			wantHour: 0,
			wantTZ:   "UTC",
		},
		{
			name:    "empty spec",
			spec:    "   ",
			wantErr: true,
		},
		{
			name:    "out of range clock",
			spec:    "25:99",
			wantErr: true,
		},
		{
			name:    "garbage clock",
			spec:    "later tonight",
			wantErr: true,
		},
		{
			name:    "unknown timezone",
			spec:    "21:00 Mars/Olympus",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			hour, minute, timezone, err := ParseTimeSpec(testCase.spec)
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %d:%02d %s", hour, minute, timezone)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hour != testCase.wantHour || minute != testCase.wantMin || timezone != testCase.wantTZ {
				t.Fatalf("got %d:%02d %s, want %d:%02d %s",
					hour, minute, timezone, testCase.wantHour, testCase.wantMin, testCase.wantTZ)
			}
		})
	}
}
