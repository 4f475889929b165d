package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cybershieldpro/backend/models"
)

// GormJobStore runs the careers store against MySQL. It is selected when a
// database is configured and implements the same JobRepository contract as
// the flat-file store.
type GormJobStore struct {
	db *gorm.DB
}

// NewGormJobStore wraps an already-migrated gorm connection.
func NewGormJobStore(db *gorm.DB) *GormJobStore {
	return &GormJobStore{db: db}
}

// List returns every posting ordered by creation time descending.
func (s *GormJobStore) List() ([]models.JobPosting, error) {
	var jobs []models.JobPosting
	if err := s.db.Order("posted_date DESC").Find(&jobs).Error; err != nil {
		return nil, &PersistenceError{Op: "list jobs", Err: err}
	}
	return jobs, nil
}

// Get returns the posting with the given id or ErrNotFound.
func (s *GormJobStore) Get(id string) (*models.JobPosting, error) {
	var job models.JobPosting
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "get job", Err: err}
	}
	return &job, nil
}

// Create validates the posting, assigns id and PostedDate, and inserts it.
func (s *GormJobStore) Create(job models.JobPosting) (*models.JobPosting, error) {
	if err := validateJob(job); err != nil {
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
	if err := s.db.Create(&job).Error; err != nil {
		return nil, &PersistenceError{Op: "create job", Err: err}
	}
	return &job, nil
}

// Update merges the patch onto the stored posting and saves the full row so
// both backends share the read-modify-write semantics.
func (s *GormJobStore) Update(id string, patch models.JobPatch) (*models.JobPosting, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	applyPatch(job, patch)
	if err := s.db.Save(job).Error; err != nil {
		return nil, &PersistenceError{Op: "update job", Err: err}
	}
	return job, nil
}

// Delete removes the posting, failing with ErrNotFound when nothing matched.
func (s *GormJobStore) Delete(id string) error {
	res := s.db.Delete(&models.JobPosting{}, "id = ?", id)
	if res.Error != nil {
		return &PersistenceError{Op: "delete job", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
