// Package model defines the persisted entities: user accounts and the
// typed result row for each questionnaire instrument.
package model

import "time"

// User represents a registered respondent, one row of user_information.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Surname      string
	Firstname    string
	Gender       string
	Email        string
	RegisterID   string
	Country      *string
	CreatedAt    time.Time
}

// IsmaResult is one scored ISMA stress submission, one answer field per
// question column of isma_web.
type IsmaResult struct {
	ID     int64
	UID    string
	UserID int64

	SleepEnough     int
	AppetiteChange  int
	GuiltFeeling    int
	Overthinking    int
	FocusMemory     int
	NoHobbyTime     int
	MusclePain      int
	Addiction       int
	WorkAtHome      int
	EnoughTime      int
	IgnoreProblems  int
	Perfectionist   int
	BadTimeEstimate int
	Overwhelmed     int
	LowSelfEsteem   int
	Impatient       int
	Hurried         int
	RoadRage        int
	Competitive     int
	Critical        int
	Distracted      int
	LowLibido       int
	TeethGrinding   int
	PerformanceDrop int

	TotalSum  int
	Severity  string
	CreatedAt time.Time
}

// NewIsmaResult builds a typed row from a validated, normalized answer
// map. The mapping is field by field on purpose: a key the validator did
// not guarantee simply has no field to land in.
func NewIsmaResult(uid string, userID int64, answers map[string]int, total int, severity string) IsmaResult {
	return IsmaResult{
		UID:             uid,
		UserID:          userID,
		SleepEnough:     answers["sleep_enough"],
		AppetiteChange:  answers["appetite_change"],
		GuiltFeeling:    answers["guilt_feeling"],
		Overthinking:    answers["overthinking"],
		FocusMemory:     answers["focus_memory"],
		NoHobbyTime:     answers["no_hobby_time"],
		MusclePain:      answers["muscle_pain"],
		Addiction:       answers["addiction"],
		WorkAtHome:      answers["work_at_home"],
		EnoughTime:      answers["enough_time"],
		IgnoreProblems:  answers["ignore_problems"],
		Perfectionist:   answers["perfectionist"],
		BadTimeEstimate: answers["bad_time_estimate"],
		Overwhelmed:     answers["overwhelmed"],
		LowSelfEsteem:   answers["low_self_esteem"],
		Impatient:       answers["impatient"],
		Hurried:         answers["hurried"],
		RoadRage:        answers["road_rage"],
		Competitive:     answers["competitive"],
		Critical:        answers["critical"],
		Distracted:      answers["distracted"],
		LowLibido:       answers["low_libido"],
		TeethGrinding:   answers["teeth_grinding"],
		PerformanceDrop: answers["performance_drop"],
		TotalSum:        total,
		Severity:        severity,
	}
}

// AnswerSum re-derives the total from the stored answer fields.
func (r IsmaResult) AnswerSum() int {
	return r.SleepEnough + r.AppetiteChange + r.GuiltFeeling + r.Overthinking +
		r.FocusMemory + r.NoHobbyTime + r.MusclePain + r.Addiction +
		r.WorkAtHome + r.EnoughTime + r.IgnoreProblems + r.Perfectionist +
		r.BadTimeEstimate + r.Overwhelmed + r.LowSelfEsteem + r.Impatient +
		r.Hurried + r.RoadRage + r.Competitive + r.Critical + r.Distracted +
		r.LowLibido + r.TeethGrinding + r.PerformanceDrop
}

// InsomniaResult is one scored insomnia submission, one answer field per
// question column of insomnia_web.
type InsomniaResult struct {
	ID     int64
	UID    string
	UserID int64

	FallAsleep        int
	StayAsleep        int
	EarlyRising       int
	SleepSatisfaction int
	DailyImpact       int
	LifeQuality       int
	SleepConcern      int

	TotalSum  int
	Severity  string
	CreatedAt time.Time
}

// NewInsomniaResult builds a typed row from a validated, normalized
// answer map.
func NewInsomniaResult(uid string, userID int64, answers map[string]int, total int, severity string) InsomniaResult {
	return InsomniaResult{
		UID:               uid,
		UserID:            userID,
		FallAsleep:        answers["fall_asleep"],
		StayAsleep:        answers["stay_asleep"],
		EarlyRising:       answers["early_rising"],
		SleepSatisfaction: answers["sleep_satisfaction"],
		DailyImpact:       answers["daily_impact"],
		LifeQuality:       answers["life_quality"],
		SleepConcern:      answers["sleep_concern"],
		TotalSum:          total,
		Severity:          severity,
	}
}

// AnswerSum re-derives the total from the stored answer fields.
func (r InsomniaResult) AnswerSum() int {
	return r.FallAsleep + r.StayAsleep + r.EarlyRising + r.SleepSatisfaction +
		r.DailyImpact + r.LifeQuality + r.SleepConcern
}

// FatigueResult is one scored fatigue submission, one answer field per
// question column of the fatigue table.
type FatigueResult struct {
	ID     int64
	UID    string
	UserID int64

	SleepDisorder         int
	WakingFatigue         int
	FocusIssue            int
	MusclePain            int
	BodyPain              int
	HeadPain              int
	NeckShoulderStiffness int
	ThroatPain            int
	MotionDizziness       int
	ExerciseFatigue       int
	EyeSensitivity        int
	NumbSensation         int
	AnxietyIssue          int
	RestlessSleep         int
	ColdSensitivity       int
	StomachUpset          int
	AllergicReaction      int

	TotalSum  int
	Severity  string
	CreatedAt time.Time
}

// NewFatigueResult builds a typed row from a validated, normalized
// answer map.
func NewFatigueResult(uid string, userID int64, answers map[string]int, total int, severity string) FatigueResult {
	return FatigueResult{
		UID:                   uid,
		UserID:                userID,
		SleepDisorder:         answers["sleep_disorder"],
		WakingFatigue:         answers["waking_fatigue"],
		FocusIssue:            answers["focus_issue"],
		MusclePain:            answers["muscle_pain"],
		BodyPain:              answers["body_pain"],
		HeadPain:              answers["head_pain"],
		NeckShoulderStiffness: answers["neck_shoulder_stiffness"],
		ThroatPain:            answers["throat_pain"],
		MotionDizziness:       answers["motion_dizziness"],
		ExerciseFatigue:       answers["exercise_fatigue"],
		EyeSensitivity:        answers["eye_sensitivity"],
		NumbSensation:         answers["numb_sensation"],
		AnxietyIssue:          answers["anxiety_issue"],
		RestlessSleep:         answers["restless_sleep"],
		ColdSensitivity:       answers["cold_sensitivity"],
		StomachUpset:          answers["stomach_upset"],
		AllergicReaction:      answers["allergic_reaction"],
		TotalSum:              total,
		Severity:              severity,
	}
}

// AnswerSum re-derives the total from the stored answer fields.
func (r FatigueResult) AnswerSum() int {
	return r.SleepDisorder + r.WakingFatigue + r.FocusIssue + r.MusclePain +
		r.BodyPain + r.HeadPain + r.NeckShoulderStiffness + r.ThroatPain +
		r.MotionDizziness + r.ExerciseFatigue + r.EyeSensitivity +
		r.NumbSensation + r.AnxietyIssue + r.RestlessSleep +
		r.ColdSensitivity + r.StomachUpset + r.AllergicReaction
}
