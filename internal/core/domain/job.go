package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a posting created by an employer. Postings are invisible to
// workers until an admin flips IsApproved.
type Job struct {
	ID              string     `json:"id"`
	EmployerID      string     `json:"employer_id"`
	EmployerName    string     `json:"employer_name"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	SalaryRange     string     `json:"salary_range"`
	JobType         string     `json:"job_type"`
	Requirements    string     `json:"requirements,omitempty"`
	IsInternational bool       `json:"is_international"`
	IsApproved      bool       `json:"is_approved"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
