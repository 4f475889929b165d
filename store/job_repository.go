package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cybershieldpro/backend/models"
)

// JobRepository is the persistence contract for job postings. Both the
// flat-file store and the MySQL store satisfy it, so the HTTP layer never
// cares which backend is configured.
type JobRepository interface {
	List() ([]models.JobPosting, error)
	Get(id string) (*models.JobPosting, error)
	Create(job models.JobPosting) (*models.JobPosting, error)
	Update(id string, patch models.JobPatch) (*models.JobPosting, error)
	Delete(id string) error
}

// validateJob checks the required posting fields in a fixed order so the
// reported field is deterministic.
func validateJob(job models.JobPosting) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", job.Title},
		{"department", job.Department},
		{"location", job.Location},
		{"type", job.Type},
		{"experience", job.Experience},
		{"salary", job.Salary},
		{"description", job.Description},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// applyPatch merges non-nil patch fields onto the posting. ID and PostedDate
// are never touched.
func applyPatch(job *models.JobPosting, patch models.JobPatch) {
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Department != nil {
		job.Department = *patch.Department
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.Type != nil {
		job.Type = *patch.Type
	}
	if patch.Experience != nil {
		job.Experience = *patch.Experience
	}
	if patch.Salary != nil {
		job.Salary = *patch.Salary
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Requirements != nil {
		job.Requirements = append([]string(nil), (*patch.Requirements)...)
	}
	if patch.Benefits != nil {
		job.Benefits = append([]string(nil), (*patch.Benefits)...)
	}
	if patch.Deadline != nil {
		job.Deadline = *patch.Deadline
	}
	if patch.IsActive != nil {
		job.IsActive = *patch.IsActive
	}
}

// FileJobStore keeps postings in a single JSON document. Every operation
// loads the whole collection and writes it back atomically (temp file plus
// rename), so a successful write is visible to the next read in this process.
// Concurrent writers are last-write-wins; the admin surface is low traffic
// enough that no locking is layered on top.
type FileJobStore struct {
	path string
}

// NewFileJobStore returns a store backed by the JSON document at path. The
// file does not need to exist yet.
func NewFileJobStore(path string) *FileJobStore {
	return &FileJobStore{path: path}
}

func (s *FileJobStore) load() ([]models.JobPosting, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.JobPosting{}, nil
		}
		return nil, &PersistenceError{Op: "read jobs", Err: err}
	}
	if len(data) == 0 {
		return []models.JobPosting{}, nil
	}
	var jobs []models.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, &PersistenceError{Op: "decode jobs", Err: err}
	}
	return jobs, nil
}

func (s *FileJobStore) save(jobs []models.JobPosting) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &PersistenceError{Op: "prepare jobs dir", Err: err}
	}
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode jobs", Err: err}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".jobs-*.json")
	if err != nil {
		return &PersistenceError{Op: "write jobs", Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write jobs", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write jobs", Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write jobs", Err: err}
	}
	return nil
}

// List returns every posting in file order, which is creation order absent
// writes.
func (s *FileJobStore) List() ([]models.JobPosting, error) {
	return s.load()
}

// Get returns the posting with the given id or ErrNotFound.
func (s *FileJobStore) Get(id string) (*models.JobPosting, error) {
	jobs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates the posting, assigns a fresh id and PostedDate, and
// persists it.
func (s *FileJobStore) Create(job models.JobPosting) (*models.JobPosting, error) {
	if err := validateJob(job); err != nil {
		return nil, err
	}
	jobs, err := s.load()
	if err != nil {
		return nil, err
	}
	job.ID = uuid.NewString()
	job.PostedDate = time.Now().UTC()
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Benefits == nil {
		job.Benefits = []string{}
	}
	jobs = append(jobs, job)
	if err := s.save(jobs); err != nil {
		return nil, err
	}
	return &job, nil
}

// Update merges the patch onto the stored posting. Missing ids fail with
// ErrNotFound.
func (s *FileJobStore) Update(id string, patch models.JobPatch) (*models.JobPosting, error) {
	jobs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}
		applyPatch(&jobs[i], patch)
		if err := s.save(jobs); err != nil {
			return nil, err
		}
		return &jobs[i], nil
	}
	return nil, ErrNotFound
}

// Delete removes the posting. A missing id fails with ErrNotFound, symmetric
// with Update.
func (s *FileJobStore) Delete(id string) error {
	jobs, err := s.load()
	if err != nil {
		return err
	}
	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}
		jobs = append(jobs[:i], jobs[i+1:]...)
		return s.save(jobs)
	}
	return ErrNotFound
}
