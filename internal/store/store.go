// Package store persists users and scored survey results in SQLite.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS user_information (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_name TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		surname TEXT NOT NULL,
		firstname TEXT NOT NULL,
		gender TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		registerid TEXT NOT NULL UNIQUE,
		country TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS isma_web (
		isma_id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid TEXT NOT NULL UNIQUE,
		user_id INTEGER NOT NULL,
		sleep_enough INTEGER,
		appetite_change INTEGER,
		guilt_feeling INTEGER,
		overthinking INTEGER,
		focus_memory INTEGER,
		no_hobby_time INTEGER,
		muscle_pain INTEGER,
		addiction INTEGER,
		work_at_home INTEGER,
		enough_time INTEGER,
		ignore_problems INTEGER,
		perfectionist INTEGER,
		bad_time_estimate INTEGER,
		overwhelmed INTEGER,
		low_self_esteem INTEGER,
		impatient INTEGER,
		hurried INTEGER,
		road_rage INTEGER,
		competitive INTEGER,
		critical INTEGER,
		distracted INTEGER,
		low_libido INTEGER,
		teeth_grinding INTEGER,
		performance_drop INTEGER,
		total_sum INTEGER NOT NULL,
		question_mn TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS insomnia_web (
		insomnia_id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid TEXT NOT NULL UNIQUE,
		user_id INTEGER NOT NULL,
		fall_asleep INTEGER,
		stay_asleep INTEGER,
		early_rising INTEGER,
		sleep_satisfaction INTEGER,
		daily_impact INTEGER,
		life_quality INTEGER,
		sleep_concern INTEGER,
		total_sum INTEGER NOT NULL,
		question_mn TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS fatigue (
		fatigue_id INTEGER PRIMARY KEY AUTOINCREMENT,
		uid TEXT NOT NULL UNIQUE,
		user_id INTEGER NOT NULL,
		sleep_disorder INTEGER,
		waking_fatigue INTEGER,
		focus_issue INTEGER,
		muscle_pain INTEGER,
		body_pain INTEGER,
		head_pain INTEGER,
		neck_shoulder_stiffness INTEGER,
		throat_pain INTEGER,
		motion_dizziness INTEGER,
		exercise_fatigue INTEGER,
		eye_sensitivity INTEGER,
		numb_sensation INTEGER,
		anxiety_issue INTEGER,
		restless_sleep INTEGER,
		cold_sensitivity INTEGER,
		stomach_upset INTEGER,
		allergic_reaction INTEGER,
		total_sum INTEGER NOT NULL,
		question_mn TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}
