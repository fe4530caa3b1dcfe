package store

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/ganbold/surveyd/internal/model"
)

// InsertIsmaResult stores one scored ISMA submission. The row is written
// in a single statement, so a rejected submission never leaves a partial
// result behind.
func (s *Store) InsertIsmaResult(r model.IsmaResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO isma_web (
			uid, user_id,
			sleep_enough, appetite_change, guilt_feeling, overthinking,
			focus_memory, no_hobby_time, muscle_pain, addiction,
			work_at_home, enough_time, ignore_problems, perfectionist,
			bad_time_estimate, overwhelmed, low_self_esteem, impatient,
			hurried, road_rage, competitive, critical, distracted,
			low_libido, teeth_grinding, performance_drop,
			total_sum, question_mn, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UID, r.UserID,
		r.SleepEnough, r.AppetiteChange, r.GuiltFeeling, r.Overthinking,
		r.FocusMemory, r.NoHobbyTime, r.MusclePain, r.Addiction,
		r.WorkAtHome, r.EnoughTime, r.IgnoreProblems, r.Perfectionist,
		r.BadTimeEstimate, r.Overwhelmed, r.LowSelfEsteem, r.Impatient,
		r.Hurried, r.RoadRage, r.Competitive, r.Critical, r.Distracted,
		r.LowLibido, r.TeethGrinding, r.PerformanceDrop,
		r.TotalSum, r.Severity, time.Now(),
	)
	if err != nil {
		slog.Error("failed to insert isma result", "user_id", r.UserID, "error", err)
		return 0, err
	}
	return res.LastInsertId()
}

// GetIsmaResult returns a stored ISMA result by UID, or nil if absent.
func (s *Store) GetIsmaResult(uid string) (*model.IsmaResult, error) {
	var r model.IsmaResult
	err := s.db.QueryRow(
		`SELECT isma_id, uid, user_id,
			sleep_enough, appetite_change, guilt_feeling, overthinking,
			focus_memory, no_hobby_time, muscle_pain, addiction,
			work_at_home, enough_time, ignore_problems, perfectionist,
			bad_time_estimate, overwhelmed, low_self_esteem, impatient,
			hurried, road_rage, competitive, critical, distracted,
			low_libido, teeth_grinding, performance_drop,
			total_sum, question_mn, created_at
		 FROM isma_web WHERE uid = ?`, uid,
	).Scan(
		&r.ID, &r.UID, &r.UserID,
		&r.SleepEnough, &r.AppetiteChange, &r.GuiltFeeling, &r.Overthinking,
		&r.FocusMemory, &r.NoHobbyTime, &r.MusclePain, &r.Addiction,
		&r.WorkAtHome, &r.EnoughTime, &r.IgnoreProblems, &r.Perfectionist,
		&r.BadTimeEstimate, &r.Overwhelmed, &r.LowSelfEsteem, &r.Impatient,
		&r.Hurried, &r.RoadRage, &r.Competitive, &r.Critical, &r.Distracted,
		&r.LowLibido, &r.TeethGrinding, &r.PerformanceDrop,
		&r.TotalSum, &r.Severity, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertInsomniaResult stores one scored insomnia submission.
func (s *Store) InsertInsomniaResult(r model.InsomniaResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO insomnia_web (
			uid, user_id,
			fall_asleep, stay_asleep, early_rising, sleep_satisfaction,
			daily_impact, life_quality, sleep_concern,
			total_sum, question_mn, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UID, r.UserID,
		r.FallAsleep, r.StayAsleep, r.EarlyRising, r.SleepSatisfaction,
		r.DailyImpact, r.LifeQuality, r.SleepConcern,
		r.TotalSum, r.Severity, time.Now(),
	)
	if err != nil {
		slog.Error("failed to insert insomnia result", "user_id", r.UserID, "error", err)
		return 0, err
	}
	return res.LastInsertId()
}

// GetInsomniaResult returns a stored insomnia result by UID, or nil if absent.
func (s *Store) GetInsomniaResult(uid string) (*model.InsomniaResult, error) {
	var r model.InsomniaResult
	err := s.db.QueryRow(
		`SELECT insomnia_id, uid, user_id,
			fall_asleep, stay_asleep, early_rising, sleep_satisfaction,
			daily_impact, life_quality, sleep_concern,
			total_sum, question_mn, created_at
		 FROM insomnia_web WHERE uid = ?`, uid,
	).Scan(
		&r.ID, &r.UID, &r.UserID,
		&r.FallAsleep, &r.StayAsleep, &r.EarlyRising, &r.SleepSatisfaction,
		&r.DailyImpact, &r.LifeQuality, &r.SleepConcern,
		&r.TotalSum, &r.Severity, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertFatigueResult stores one scored fatigue submission.
func (s *Store) InsertFatigueResult(r model.FatigueResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO fatigue (
			uid, user_id,
			sleep_disorder, waking_fatigue, focus_issue, muscle_pain,
			body_pain, head_pain, neck_shoulder_stiffness, throat_pain,
			motion_dizziness, exercise_fatigue, eye_sensitivity, numb_sensation,
			anxiety_issue, restless_sleep, cold_sensitivity, stomach_upset,
			allergic_reaction,
			total_sum, question_mn, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.UID, r.UserID,
		r.SleepDisorder, r.WakingFatigue, r.FocusIssue, r.MusclePain,
		r.BodyPain, r.HeadPain, r.NeckShoulderStiffness, r.ThroatPain,
		r.MotionDizziness, r.ExerciseFatigue, r.EyeSensitivity, r.NumbSensation,
		r.AnxietyIssue, r.RestlessSleep, r.ColdSensitivity, r.StomachUpset,
		r.AllergicReaction,
		r.TotalSum, r.Severity, time.Now(),
	)
	if err != nil {
		slog.Error("failed to insert fatigue result", "user_id", r.UserID, "error", err)
		return 0, err
	}
	return res.LastInsertId()
}

// GetFatigueResult returns a stored fatigue result by UID, or nil if absent.
func (s *Store) GetFatigueResult(uid string) (*model.FatigueResult, error) {
	var r model.FatigueResult
	err := s.db.QueryRow(
		`SELECT fatigue_id, uid, user_id,
			sleep_disorder, waking_fatigue, focus_issue, muscle_pain,
			body_pain, head_pain, neck_shoulder_stiffness, throat_pain,
			motion_dizziness, exercise_fatigue, eye_sensitivity, numb_sensation,
			anxiety_issue, restless_sleep, cold_sensitivity, stomach_upset,
			allergic_reaction,
			total_sum, question_mn, created_at
		 FROM fatigue WHERE uid = ?`, uid,
	).Scan(
		&r.ID, &r.UID, &r.UserID,
		&r.SleepDisorder, &r.WakingFatigue, &r.FocusIssue, &r.MusclePain,
		&r.BodyPain, &r.HeadPain, &r.NeckShoulderStiffness, &r.ThroatPain,
		&r.MotionDizziness, &r.ExerciseFatigue, &r.EyeSensitivity, &r.NumbSensation,
		&r.AnxietyIssue, &r.RestlessSleep, &r.ColdSensitivity, &r.StomachUpset,
		&r.AllergicReaction,
		&r.TotalSum, &r.Severity, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CountIsmaResults returns the number of stored ISMA results.
func (s *Store) CountIsmaResults() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM isma_web`).Scan(&count)
	return count, err
}

// CountInsomniaResults returns the number of stored insomnia results.
func (s *Store) CountInsomniaResults() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM insomnia_web`).Scan(&count)
	return count, err
}

// CountFatigueResults returns the number of stored fatigue results.
func (s *Store) CountFatigueResults() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM fatigue`).Scan(&count)
	return count, err
}
