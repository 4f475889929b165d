package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/cybershieldpro/backend/models"
)

func newTestJobStore(t *testing.T) *FileJobStore {
	t.Helper()
	return NewFileJobStore(filepath.Join(t.TempDir(), "jobs.json"))
}

func validJob() models.JobPosting {
	return models.JobPosting{
		Title:        "Security Analyst",
		Department:   "SOC",
		Location:     "Remote",
		Type:         "Full-time",
		Experience:   "Mid-level",
		Salary:       "$90k-$120k",
		Description:  "Monitor and triage alerts.",
		Requirements: []string{"SIEM experience"},
		Benefits:     []string{"Health insurance"},
		IsActive:     true,
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	s := newTestJobStore(t)

	created, err := s.Create(validJob())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Error("ID should be assigned")
	}
	if created.PostedDate.IsZero() {
		t.Error("PostedDate should be assigned")
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Security Analyst" || got.Department != "SOC" || got.Salary != "$90k-$120k" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Requirements) != 1 || got.Requirements[0] != "SIEM experience" {
		t.Errorf("Requirements = %#v", got.Requirements)
	}
	if !got.PostedDate.Equal(created.PostedDate) {
		t.Errorf("PostedDate changed on read: %v vs %v", got.PostedDate, created.PostedDate)
	}
}

func TestCreateValidation(t *testing.T) {
	s := newTestJobStore(t)

	cases := []struct {
		field string
		strip func(*models.JobPosting)
	}{
		{"title", func(j *models.JobPosting) { j.Title = "" }},
		{"department", func(j *models.JobPosting) { j.Department = "" }},
		{"location", func(j *models.JobPosting) { j.Location = "" }},
		{"type", func(j *models.JobPosting) { j.Type = "" }},
		{"experience", func(j *models.JobPosting) { j.Experience = "" }},
		{"salary", func(j *models.JobPosting) { j.Salary = "" }},
		{"description", func(j *models.JobPosting) { j.Description = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			job := validJob()
			tc.strip(&job)
			_, err := s.Create(job)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tc.field)
			}
		})
	}
}

func TestUpdatePartial(t *testing.T) {
	s := newTestJobStore(t)
	created, err := s.Create(validJob())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newSalary := "$130k-$150k"
	inactive := false
	updated, err := s.Update(created.ID, models.JobPatch{
		Salary:   &newSalary,
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Salary != newSalary {
		t.Errorf("Salary = %q, want %q", updated.Salary, newSalary)
	}
	if updated.IsActive {
		t.Error("IsActive should be false after patch")
	}
	// Untouched fields survive.
	if updated.Title != created.Title || updated.Department != created.Department {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	// Identity fields never move.
	if updated.ID != created.ID {
		t.Errorf("ID changed: %q vs %q", updated.ID, created.ID)
	}
	if !updated.PostedDate.Equal(created.PostedDate) {
		t.Errorf("PostedDate changed: %v vs %v", updated.PostedDate, created.PostedDate)
	}
}

func TestUpdateMissing(t *testing.T) {
	s := newTestJobStore(t)
	title := "x"
	if _, err := s.Update("nope", models.JobPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestJobStore(t)
	created, err := s.Create(validJob())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after delete", err)
	}
	if err := s.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestListEmptyStore(t *testing.T) {
	s := newTestJobStore(t)
	jobs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("len = %d, want 0", len(jobs))
	}
}

func TestWritesVisibleToNewStoreInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	created, err := NewFileJobStore(path).Create(validJob())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := NewFileJobStore(path).Get(created.ID)
	if err != nil {
		t.Fatalf("Get from fresh instance: %v", err)
	}
	if got.Title != created.Title {
		t.Errorf("Title = %q, want %q", got.Title, created.Title)
	}
}
