package survey

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownInstrument is returned when a name does not match a
	// registered instrument.
	ErrUnknownInstrument = errors.New("unknown instrument")

	// ErrNoMatchingBand indicates a misconfigured band table. NewRegistry
	// rejects such tables, so a correctly built registry never returns it.
	ErrNoMatchingBand = errors.New("no matching score band")
)

// ValidationError reports the difference between a submission's question
// keys and the instrument's question set. At least one slice is non-empty.
type ValidationError struct {
	Instrument string
	Missing    []string // canonical IDs absent from the submission
	Extra      []string // submitted keys the instrument does not declare
	Duplicate  []string // canonical IDs answered under more than one key
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing questions: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected questions: "+strings.Join(e.Extra, ", "))
	}
	if len(e.Duplicate) > 0 {
		parts = append(parts, "duplicate questions: "+strings.Join(e.Duplicate, ", "))
	}
	return fmt.Sprintf("%s submission invalid: %s", e.Instrument, strings.Join(parts, "; "))
}

// Validated is a submission that passed Validate for its instrument.
// It is the only input Score accepts, so an incomplete answer map can
// never reach summation.
type Validated struct {
	instrument *Instrument
	responses  map[string]int
}

// Responses returns a copy of the normalized canonical-key answer map.
// Callers may mutate the copy without affecting the validated submission.
func (v Validated) Responses() map[string]int {
	out := make(map[string]int, len(v.responses))
	for k, val := range v.responses {
		out[k] = val
	}
	return out
}

// Normalized is a submission after alias mapping: the canonical-key answer
// map plus any canonical IDs that more than one submitted key mapped onto.
// Collisions make Validate fail, so a colliding answer never reaches Score.
type Normalized struct {
	Responses map[string]int
	Duplicate []string
}

// Normalize maps external submission keys to the instrument's canonical
// IDs using its alias table. Keys outside the declared external key set
// are kept as-is so Validate can report them as unexpected. A key whose
// canonical ID was already answered (for example both "Fall Asleep" and
// "fall_asleep") is recorded in Duplicate instead of silently overwriting.
func Normalize(ins *Instrument, responses map[string]int) Normalized {
	out := make(map[string]int, len(responses))
	var dup []string
	for k, val := range responses {
		key := k
		if canonical, ok := ins.Aliases[k]; ok {
			key = canonical
		}
		if _, taken := out[key]; taken {
			dup = append(dup, key)
			continue
		}
		out[key] = val
	}
	sort.Strings(dup)
	return Normalized{Responses: out, Duplicate: dup}
}

// Validate checks that the normalized key set equals the instrument's
// question set exactly, both directions, and that no canonical ID was
// answered twice. It has no side effects and does not inspect answer
// values.
func Validate(ins *Instrument, n Normalized) (Validated, error) {
	declared := make(map[string]bool, len(ins.Questions))
	for _, q := range ins.Questions {
		declared[q] = true
	}

	var missing, extra []string
	for _, q := range ins.Questions {
		if _, ok := n.Responses[q]; !ok {
			missing = append(missing, q)
		}
	}
	for k := range n.Responses {
		if !declared[k] {
			extra = append(extra, k)
		}
	}
	if len(missing) > 0 || len(extra) > 0 || len(n.Duplicate) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return Validated{}, &ValidationError{Instrument: ins.Name, Missing: missing, Extra: extra, Duplicate: n.Duplicate}
	}
	return Validated{instrument: ins, responses: n.Responses}, nil
}

// Score returns the arithmetic sum of all answers. No weighting, no
// normalization.
func Score(v Validated) int {
	total := 0
	for _, val := range v.responses {
		total += val
	}
	return total
}

// Classify returns the label of the first band containing total. Bands
// are inclusive on the upper end with an open final band, so every
// integer sum resolves to exactly one label.
func Classify(ins *Instrument, total int) (string, error) {
	for _, b := range ins.Bands {
		if b.Open || total <= b.Max {
			return b.Label, nil
		}
	}
	return "", fmt.Errorf("%w: %s total %d", ErrNoMatchingBand, ins.Name, total)
}

// Outcome is the result of evaluating one submission: the normalized
// answers, their sum, and the resolved severity label ID. The label is an
// i18n message ID; the caller localizes it before display or storage.
type Outcome struct {
	Instrument *Instrument
	UserID     int64
	Total      int
	LabelID    string
	Responses  map[string]int
}

// Engine runs the full scoring pipeline against a registry. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	registry *Registry
}

// NewEngine wraps a registry built by NewRegistry.
func NewEngine(r *Registry) *Engine {
	return &Engine{registry: r}
}

// Registry exposes the engine's instrument registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Evaluate normalizes, validates, sums, and classifies one submission.
// Validation must fully succeed before summation runs; on any error the
// returned outcome is nil and nothing is partially applied.
func (e *Engine) Evaluate(instrumentName string, userID int64, responses map[string]int) (*Outcome, error) {
	ins, err := e.registry.Get(instrumentName)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(ins, responses)
	validated, err := Validate(ins, normalized)
	if err != nil {
		return nil, err
	}

	total := Score(validated)
	label, err := Classify(ins, total)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Instrument: ins,
		UserID:     userID,
		Total:      total,
		LabelID:    label,
		Responses:  validated.Responses(),
	}, nil
}
