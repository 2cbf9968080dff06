package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/jobtracker/pkg/models"
	"github.com/celestiaorg/jobtracker/pkg/types"
)

// job flag names
const (
	flagID       = "id"
	flagCompany  = "company"
	flagPosition = "position"
	flagStatus   = "status"
	flagJobType  = "job-type"
	flagLocation = "location"
)

func newJobsCmd(state *cliState) *cobra.Command {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage tracked job applications",
	}

	jobsCmd.AddCommand(
		newListJobsCmd(state),
		newGetJobCmd(state),
		newCreateJobCmd(state),
		newUpdateJobCmd(state),
		newDeleteJobCmd(state),
	)
	return jobsCmd
}

func newListJobsCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all your jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.requireOwnerID(); err != nil {
				return err
			}

			jobs, err := state.apiClient.ListJobs(cmd.Context())
			if err != nil {
				return fmt.Errorf("error fetching jobs: %w", err)
			}
			return printJSON(cmd, jobs)
		},
	}
}

func newGetJobCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get a specific job",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.requireOwnerID(); err != nil {
				return err
			}
			id, _ := cmd.Flags().GetUint(flagID)

			job, err := state.apiClient.GetJob(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error fetching job: %w", err)
			}
			return printJSON(cmd, job)
		},
	}

	cmd.Flags().UintP(flagID, "i", 0, "Job ID to fetch")
	_ = cmd.MarkFlagRequired(flagID)
	return cmd
}

func newCreateJobCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Track a new job application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.requireOwnerID(); err != nil {
				return err
			}

			flags := cmd.Flags()
			company, _ := flags.GetString(flagCompany)
			position, _ := flags.GetString(flagPosition)
			status, _ := flags.GetString(flagStatus)
			jobType, _ := flags.GetString(flagJobType)
			location, _ := flags.GetString(flagLocation)

			req := types.JobRequest{
				Company:  company,
				Position: position,
				Location: location,
			}
			if status != "" {
				s, err := models.ParseJobStatus(status)
				if err != nil {
					return err
				}
				req.Status = s
			}
			if jobType != "" {
				t, err := models.ParseJobType(jobType)
				if err != nil {
					return err
				}
				req.JobType = t
			}

			job, err := state.apiClient.CreateJob(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("error creating job: %w", err)
			}
			return printJSON(cmd, job)
		},
	}

	addJobFieldFlags(cmd)
	_ = cmd.MarkFlagRequired(flagCompany)
	_ = cmd.MarkFlagRequired(flagPosition)
	return cmd
}

func newUpdateJobCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change fields of a job. Only the given flags are sent.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.requireOwnerID(); err != nil {
				return err
			}
			id, _ := cmd.Flags().GetUint(flagID)

			patch, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to update: set at least one of --%s, --%s, --%s, --%s or --%s",
					flagCompany, flagPosition, flagStatus, flagJobType, flagLocation)
			}

			job, err := state.apiClient.UpdateJob(cmd.Context(), id, patch)
			if err != nil {
				return fmt.Errorf("error updating job: %w", err)
			}
			return printJSON(cmd, job)
		},
	}

	cmd.Flags().UintP(flagID, "i", 0, "Job ID to update")
	_ = cmd.MarkFlagRequired(flagID)
	addJobFieldFlags(cmd)
	return cmd
}

func newDeleteJobCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a job and print your remaining jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.requireOwnerID(); err != nil {
				return err
			}
			id, _ := cmd.Flags().GetUint(flagID)

			remaining, err := state.apiClient.DeleteJob(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("error deleting job: %w", err)
			}
			return printJSON(cmd, remaining)
		},
	}

	cmd.Flags().UintP(flagID, "i", 0, "Job ID to delete")
	_ = cmd.MarkFlagRequired(flagID)
	return cmd
}

func addJobFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagCompany, "", "Company name")
	cmd.Flags().String(flagPosition, "", "Position applied for")
	cmd.Flags().String(flagStatus, "", "Application status: applied, interview, pending or declined")
	cmd.Flags().String(flagJobType, "", "Job type: full-time, part-time, remote or internship")
	cmd.Flags().String(flagLocation, "", "Job location")
}

// patchFromFlags builds a patch from the flags the user actually set.
// An explicitly empty --company is kept so the server can reject it.
func patchFromFlags(cmd *cobra.Command) (models.JobPatch, error) {
	var patch models.JobPatch
	flags := cmd.Flags()

	if flags.Changed(flagCompany) {
		v, _ := flags.GetString(flagCompany)
		patch.Company = &v
	}
	if flags.Changed(flagPosition) {
		v, _ := flags.GetString(flagPosition)
		patch.Position = &v
	}
	if flags.Changed(flagLocation) {
		v, _ := flags.GetString(flagLocation)
		patch.Location = &v
	}
	if flags.Changed(flagStatus) {
		v, _ := flags.GetString(flagStatus)
		status, err := models.ParseJobStatus(v)
		if err != nil {
			return models.JobPatch{}, err
		}
		patch.Status = &status
	}
	if flags.Changed(flagJobType) {
		v, _ := flags.GetString(flagJobType)
		jobType, err := models.ParseJobType(v)
		if err != nil {
			return models.JobPatch{}, err
		}
		patch.JobType = &jobType
	}

	return patch, nil
}

// printJSON pretty prints v to the command output
func printJSON(cmd *cobra.Command, v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(prettyJSON))
	return err
}
