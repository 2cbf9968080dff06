package types

import "github.com/celestiaorg/jobtracker/internal/db/models"

// Response tags carried in the msg field
const (
	MsgAllJobs    = "ALL_JOBS"
	MsgSingleJob  = "SINGLE_JOB"
	MsgUpdatedJob = "UPDATED_JOB"
	MsgJobDeleted = "JOB_DELETED"
)

// JobRequest is the body of a create request.
// Identity and timestamps are not accepted from the caller.
type JobRequest struct {
	Company  string           `json:"company"`
	Position string           `json:"position"`
	Status   models.JobStatus `json:"status,omitempty"`
	JobType  models.JobType   `json:"job_type,omitempty"`
	Location string           `json:"location,omitempty"`
}

// ToModel converts the request into an unsaved job
func (r JobRequest) ToModel() *models.Job {
	return &models.Job{
		Company:  r.Company,
		Position: r.Position,
		Status:   r.Status,
		JobType:  r.JobType,
		Location: r.Location,
	}
}

// ListJobsResponse is returned by the list endpoint
// Example: {"msg":"ALL_JOBS","length":1,"job":[{"id":1,"company":"Acme"}]}
type ListJobsResponse struct {
	Msg    string       `json:"msg"`
	Length int          `json:"length"`
	Jobs   []models.Job `json:"job"`
}

// JobResponse is returned by the get and update endpoints
type JobResponse struct {
	Msg string     `json:"msg"`
	Job models.Job `json:"job"`
}

// CreateJobResponse is returned by the create endpoint. It carries no msg tag.
type CreateJobResponse struct {
	Job models.Job `json:"job"`
}

// DeleteJobResponse is returned by the delete endpoint with the caller's remaining jobs
type DeleteJobResponse struct {
	Msg     string       `json:"msg"`
	Updated []models.Job `json:"updated"`
}
