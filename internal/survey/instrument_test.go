package survey

import (
	"errors"
	"testing"
)

func TestRegistryHoldsThreeInstruments(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		name          string
		wantQuestions int
	}{
		{InstrumentIsma, 24},
		{InstrumentInsomnia, 7},
		{InstrumentFatigue, 17},
	}

	for _, tt := range tests {
		ins := mustGet(t, r, tt.name)
		if len(ins.Questions) != tt.wantQuestions {
			t.Errorf("%s has %d questions, want %d", tt.name, len(ins.Questions), tt.wantQuestions)
		}
	}
	if len(r.Names()) != 3 {
		t.Errorf("registry has %d instruments, want 3", len(r.Names()))
	}
}

func TestRegistryGetIsCaseInsensitive(t *testing.T) {
	r := newTestRegistry(t)

	ins, err := r.Get("ISMA")
	if err != nil {
		t.Fatalf("Get(ISMA): %v", err)
	}
	if ins.Name != InstrumentIsma {
		t.Errorf("got %q, want %q", ins.Name, InstrumentIsma)
	}
}

func TestRegistryUnknownInstrument(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Get("gad7")
	if !errors.Is(err, ErrUnknownInstrument) {
		t.Errorf("got %v, want ErrUnknownInstrument", err)
	}
}

func TestCheckBands(t *testing.T) {
	tests := []struct {
		name    string
		bands   []ScoreBand
		wantErr bool
	}{
		{
			"valid ascending with open tail",
			[]ScoreBand{{Max: 5, Label: "a"}, {Max: 10, Label: "b"}, {Open: true, Label: "c"}},
			false,
		},
		{
			"single open band",
			[]ScoreBand{{Open: true, Label: "a"}},
			false,
		},
		{
			"empty table",
			nil,
			true,
		},
		{
			"final band not open",
			[]ScoreBand{{Max: 5, Label: "a"}, {Max: 10, Label: "b"}},
			true,
		},
		{
			"open band not last",
			[]ScoreBand{{Open: true, Label: "a"}, {Max: 10, Label: "b"}, {Open: true, Label: "c"}},
			true,
		},
		{
			"overlapping bounds",
			[]ScoreBand{{Max: 5, Label: "a"}, {Max: 5, Label: "b"}, {Open: true, Label: "c"}},
			true,
		},
		{
			"descending bounds",
			[]ScoreBand{{Max: 10, Label: "a"}, {Max: 5, Label: "b"}, {Open: true, Label: "c"}},
			true,
		},
		{
			"unlabeled band",
			[]ScoreBand{{Max: 5}, {Open: true, Label: "c"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := &Instrument{Name: "test", Questions: []string{"q1"}, Bands: tt.bands}
			err := checkBands(ins)
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fall Asleep", "fall_asleep"},
		{"Neck Shoulder Stiffness", "neck_shoulder_stiffness"},
		{"sleep_enough", "sleep_enough"},
	}
	for _, tt := range tests {
		if got := canonicalKey(tt.in); got != tt.want {
			t.Errorf("canonicalKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
