package store

import (
	"testing"

	"github.com/ganbold/surveyd/internal/model"
	"github.com/ganbold/surveyd/internal/survey"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func insertTestUser(t *testing.T, s *Store, username, email, registerID string) int64 {
	t.Helper()
	id, err := s.CreateUser(model.User{
		Username:     username,
		PasswordHash: "$2a$10$test",
		Surname:      "Bat",
		Firstname:    "Dorj",
		Gender:       "male",
		Email:        email,
		RegisterID:   registerID,
	})
	if err != nil {
		t.Fatalf("insertTestUser: %v", err)
	}
	return id
}

// answers builds a canonical-key answer map for an instrument, every
// answer set to value.
func answers(t *testing.T, instrument string, value int) map[string]int {
	t.Helper()
	r, err := survey.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	ins, err := r.Get(instrument)
	if err != nil {
		t.Fatalf("Get(%q): %v", instrument, err)
	}
	m := make(map[string]int, len(ins.Questions))
	for _, q := range ins.Questions {
		m[q] = value
	}
	return m
}

func TestUserCRUD(t *testing.T) {
	s := newTestStore(t)

	count, err := s.UserCount()
	if err != nil {
		t.Fatalf("UserCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 users, got %d", count)
	}

	id := insertTestUser(t, s, "bat99", "bat@example.mn", "УК99112233")

	u, err := s.GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if u == nil {
		t.Fatal("expected user, got nil")
	}
	if u.Username != "bat99" {
		t.Errorf("expected username 'bat99', got %q", u.Username)
	}
	if u.Country != nil {
		t.Errorf("expected nil country, got %v", *u.Country)
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	// Lookup by each unique column.
	if u, _ := s.GetUserByUsername("bat99"); u == nil || u.ID != id {
		t.Error("GetUserByUsername did not find the user")
	}
	if u, _ := s.GetUserByEmail("bat@example.mn"); u == nil || u.ID != id {
		t.Error("GetUserByEmail did not find the user")
	}
	if u, _ := s.GetUserByRegisterID("УК99112233"); u == nil || u.ID != id {
		t.Error("GetUserByRegisterID did not find the user")
	}

	// Absent rows return nil, not an error.
	if u, err := s.GetUserByUsername("nobody"); err != nil || u != nil {
		t.Errorf("GetUserByUsername(nobody) = %v, %v; want nil, nil", u, err)
	}

	insertTestUser(t, s, "saraa01", "saraa@example.mn", "ТА88040411")
	users, err := s.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestCreateUserDuplicatesRejected(t *testing.T) {
	s := newTestStore(t)
	insertTestUser(t, s, "bat99", "bat@example.mn", "УК99112233")

	tests := []struct {
		name       string
		username   string
		email      string
		registerID string
	}{
		{"duplicate username", "bat99", "other@example.mn", "ТА88040411"},
		{"duplicate email", "other", "bat@example.mn", "ТА88040411"},
		{"duplicate register id", "other", "other@example.mn", "УК99112233"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateUser(model.User{
				Username:     tt.username,
				PasswordHash: "$2a$10$test",
				Surname:      "x",
				Firstname:    "x",
				Gender:       "x",
				Email:        tt.email,
				RegisterID:   tt.registerID,
			})
			if err == nil {
				t.Error("expected unique constraint error, got nil")
			}
		})
	}
}

func TestIsmaResultRoundTrip(t *testing.T) {
	s := newTestStore(t)
	userID := insertTestUser(t, s, "bat99", "bat@example.mn", "УК99112233")

	in := model.NewIsmaResult("uid-isma-1", userID, answers(t, survey.InstrumentIsma, 1), 24, "Стрессийн түвшин маш өндөр байна")
	if _, err := s.InsertIsmaResult(in); err != nil {
		t.Fatalf("InsertIsmaResult: %v", err)
	}

	got, err := s.GetIsmaResult("uid-isma-1")
	if err != nil {
		t.Fatalf("GetIsmaResult: %v", err)
	}
	if got == nil {
		t.Fatal("expected result, got nil")
	}
	if got.TotalSum != 24 {
		t.Errorf("expected total 24, got %d", got.TotalSum)
	}
	if got.AnswerSum() != got.TotalSum {
		t.Errorf("stored answers sum to %d, total_sum is %d", got.AnswerSum(), got.TotalSum)
	}
	if got.Severity != "Стрессийн түвшин маш өндөр байна" {
		t.Errorf("unexpected severity %q", got.Severity)
	}
	if got.UserID != userID {
		t.Errorf("expected user %d, got %d", userID, got.UserID)
	}

	// Absent UID returns nil.
	missing, err := s.GetIsmaResult("no-such-uid")
	if err != nil || missing != nil {
		t.Errorf("GetIsmaResult(no-such-uid) = %v, %v; want nil, nil", missing, err)
	}
}

func TestInsomniaResultRoundTrip(t *testing.T) {
	s := newTestStore(t)
	userID := insertTestUser(t, s, "bat99", "bat@example.mn", "УК99112233")

	in := model.NewInsomniaResult("uid-ins-1", userID, answers(t, survey.InstrumentInsomnia, 3), 21, "Дунд зэргийн нойргүйдэлтэй")
	if _, err := s.InsertInsomniaResult(in); err != nil {
		t.Fatalf("InsertInsomniaResult: %v", err)
	}

	got, err := s.GetInsomniaResult("uid-ins-1")
	if err != nil {
		t.Fatalf("GetInsomniaResult: %v", err)
	}
	if got == nil {
		t.Fatal("expected result, got nil")
	}
	if got.AnswerSum() != 21 || got.TotalSum != 21 {
		t.Errorf("expected sums 21/21, got %d/%d", got.AnswerSum(), got.TotalSum)
	}
	if got.FallAsleep != 3 || got.SleepConcern != 3 {
		t.Errorf("answer fields not preserved: fall_asleep=%d sleep_concern=%d", got.FallAsleep, got.SleepConcern)
	}

	count, err := s.CountInsomniaResults()
	if err != nil {
		t.Fatalf("CountInsomniaResults: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 result, got %d", count)
	}
}

func TestFatigueResultRoundTrip(t *testing.T) {
	s := newTestStore(t)
	userID := insertTestUser(t, s, "bat99", "bat@example.mn", "УК99112233")

	in := model.NewFatigueResult("uid-fat-1", userID, answers(t, survey.InstrumentFatigue, 2), 34, "Дунд зэргийн архаг ядаргаатай")
	if _, err := s.InsertFatigueResult(in); err != nil {
		t.Fatalf("InsertFatigueResult: %v", err)
	}

	got, err := s.GetFatigueResult("uid-fat-1")
	if err != nil {
		t.Fatalf("GetFatigueResult: %v", err)
	}
	if got == nil {
		t.Fatal("expected result, got nil")
	}
	if got.AnswerSum() != got.TotalSum {
		t.Errorf("stored answers sum to %d, total_sum is %d", got.AnswerSum(), got.TotalSum)
	}
	if got.AllergicReaction != 2 || got.SleepDisorder != 2 {
		t.Errorf("answer fields not preserved: sleep_disorder=%d allergic_reaction=%d", got.SleepDisorder, got.AllergicReaction)
	}
}

func TestDuplicateResultUIDRejected(t *testing.T) {
	s := newTestStore(t)
	userID := insertTestUser(t, s, "bat99", "bat@example.mn", "УК99112233")

	in := model.NewInsomniaResult("dup-uid", userID, answers(t, survey.InstrumentInsomnia, 1), 7, "Нойргүйдэл байхгүй")
	if _, err := s.InsertInsomniaResult(in); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if _, err := s.InsertInsomniaResult(in); err == nil {
		t.Error("expected unique constraint error on duplicate UID")
	}

	count, _ := s.CountInsomniaResults()
	if count != 1 {
		t.Errorf("expected 1 result after failed duplicate, got %d", count)
	}
}
