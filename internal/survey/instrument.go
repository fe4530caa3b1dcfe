// Package survey implements the questionnaire scoring engine: key
// normalization, submission validation, summation, and severity
// classification for the registered instruments.
package survey

import (
	"fmt"
	"strings"
)

// ScoreBand maps a range of total sums to a severity label.
// Max is the inclusive upper bound; the final band of every instrument
// is open (unbounded above) so classification is total over all sums.
// Label is an i18n message ID, not display text.
type ScoreBand struct {
	Max   int
	Open  bool
	Label string
}

// Instrument is a fixed questionnaire definition: the canonical question
// identifiers, the external-key alias table, and the classification bands.
// Instruments are built once by NewRegistry and never mutated.
type Instrument struct {
	Name      string
	Questions []string          // canonical IDs, submission order
	Aliases   map[string]string // external key -> canonical ID
	Bands     []ScoreBand
}

// MaxSum returns the highest achievable total when every answer is at
// the given per-question maximum.
func (ins *Instrument) MaxSum(perQuestion int) int {
	return len(ins.Questions) * perQuestion
}

// Instrument names accepted by Registry.Get and the /survey/{instrument} route.
const (
	InstrumentIsma     = "isma"
	InstrumentInsomnia = "insomnia"
	InstrumentFatigue  = "fatigue"
)

var ismaQuestions = []string{
	"sleep_enough", "appetite_change", "guilt_feeling", "overthinking",
	"focus_memory", "no_hobby_time", "muscle_pain", "addiction",
	"work_at_home", "enough_time", "ignore_problems", "perfectionist",
	"bad_time_estimate", "overwhelmed", "low_self_esteem", "impatient",
	"hurried", "road_rage", "competitive", "critical", "distracted",
	"low_libido", "teeth_grinding", "performance_drop",
}

// Insomnia and Fatigue submissions arrive with human-readable keys; the
// canonical column names are derived by lower-casing and replacing spaces
// with underscores.
var insomniaExternalKeys = []string{
	"Fall Asleep", "Stay Asleep", "Early Rising", "Sleep Satisfaction",
	"Daily Impact", "Life Quality", "Sleep Concern",
}

var fatigueExternalKeys = []string{
	"Sleep Disorder", "Waking Fatigue", "Focus Issue", "Muscle Pain",
	"Body Pain", "Head Pain", "Neck Shoulder Stiffness", "Throat Pain",
	"Motion Dizziness", "Exercise Fatigue", "Eye Sensitivity", "Numb Sensation",
	"Anxiety Issue", "Restless Sleep", "Cold Sensitivity", "Stomach Upset",
	"Allergic Reaction",
}

// Registry holds the fixed instrument definitions and exposes lookup by name.
type Registry struct {
	instruments map[string]*Instrument
}

// NewRegistry builds the three instruments and verifies every band table
// before returning. A band-table error is a configuration defect and makes
// startup fail rather than surfacing at scoring time.
func NewRegistry() (*Registry, error) {
	instruments := []*Instrument{
		{
			Name:      InstrumentIsma,
			Questions: ismaQuestions,
			Aliases:   identityAliases(ismaQuestions),
			Bands: []ScoreBand{
				{Max: 5, Label: "SeverityIsmaLow"},
				{Max: 10, Label: "SeverityIsmaHigh"},
				{Open: true, Label: "SeverityIsmaVeryHigh"},
			},
		},
		{
			Name:      InstrumentInsomnia,
			Questions: canonicalKeys(insomniaExternalKeys),
			Aliases:   phraseAliases(insomniaExternalKeys),
			Bands: []ScoreBand{
				{Max: 7, Label: "SeverityInsomniaNone"},
				{Max: 14, Label: "SeverityInsomniaMild"},
				{Max: 21, Label: "SeverityInsomniaModerate"},
				{Open: true, Label: "SeverityInsomniaSevere"},
			},
		},
		{
			Name:      InstrumentFatigue,
			Questions: canonicalKeys(fatigueExternalKeys),
			Aliases:   phraseAliases(fatigueExternalKeys),
			Bands: []ScoreBand{
				{Max: 10, Label: "SeverityFatigueLow"},
				{Max: 24, Label: "SeverityFatigueMild"},
				{Max: 51, Label: "SeverityFatigueModerate"},
				{Open: true, Label: "SeverityFatigueSevere"},
			},
		},
	}

	r := &Registry{instruments: make(map[string]*Instrument, len(instruments))}
	for _, ins := range instruments {
		if err := checkBands(ins); err != nil {
			return nil, fmt.Errorf("instrument %s: %w", ins.Name, err)
		}
		r.instruments[ins.Name] = ins
	}
	return r, nil
}

// Get returns the instrument registered under name.
func (r *Registry) Get(name string) (*Instrument, error) {
	ins, ok := r.instruments[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, name)
	}
	return ins, nil
}

// Names returns the registered instrument names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.instruments))
	for name := range r.instruments {
		names = append(names, name)
	}
	return names
}

// checkBands enforces the band-table invariants: at least one band,
// strictly ascending inclusive bounds, and exactly one open band in the
// final position. Together with the open tail this makes classification
// total and mutually exclusive over all integer sums.
func checkBands(ins *Instrument) error {
	if len(ins.Bands) == 0 {
		return fmt.Errorf("empty band table")
	}
	for i, b := range ins.Bands {
		last := i == len(ins.Bands)-1
		if b.Open != last {
			if b.Open {
				return fmt.Errorf("band %d (%s) is open but not last", i, b.Label)
			}
			return fmt.Errorf("final band (%s) must be open", b.Label)
		}
		if b.Label == "" {
			return fmt.Errorf("band %d has no label", i)
		}
		if i > 0 && !b.Open && b.Max <= ins.Bands[i-1].Max {
			return fmt.Errorf("band %d (%s) does not ascend past %d", i, b.Label, ins.Bands[i-1].Max)
		}
	}
	return nil
}

func identityAliases(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	return m
}

func phraseAliases(external []string) map[string]string {
	m := make(map[string]string, len(external))
	for _, k := range external {
		m[k] = canonicalKey(k)
	}
	return m
}

func canonicalKeys(external []string) []string {
	out := make([]string, len(external))
	for i, k := range external {
		out[i] = canonicalKey(k)
	}
	return out
}

func canonicalKey(k string) string {
	return strings.ToLower(strings.ReplaceAll(k, " ", "_"))
}
