// Package commands implements the jobtracker CLI
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/jobtracker/internal/constants"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

// flag names
const (
	flagOwnerID       = "owner-id"
	flagServerAddress = "server-address"
	flagTimeout       = "timeout"
)

// clientInstance overrides the API client built from the flags. Tests set it.
var clientInstance client.Client

// cliState holds the values shared by every command of one invocation
type cliState struct {
	serverAddress string
	ownerID       uint
	apiClient     client.Client
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:   "jobtracker",
		Short: "jobtracker CLI - A command line interface for the job tracker API",
		Long: `jobtracker is a command line tool for tracking job applications through the job tracker API.
Every job command acts on behalf of the user given with --owner-id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			state.serverAddress = resolveServerAddress(cmd.Flags().Changed(flagServerAddress), state.serverAddress)
			if state.serverAddress == "" {
				return fmt.Errorf("server address cannot be empty")
			}
			return state.initClient(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&state.serverAddress, flagServerAddress, "s", routes.DefaultBaseURL,
		fmt.Sprintf("Address of the job tracker API server (env: %s)", constants.EnvServerAddress))
	rootCmd.PersistentFlags().UintVarP(&state.ownerID, flagOwnerID, "o", 0, "ID of the user the request acts for")
	rootCmd.PersistentFlags().Duration(flagTimeout, client.DefaultTimeout, "Request timeout")

	rootCmd.AddCommand(newHealthCmd(state))
	rootCmd.AddCommand(newJobsCmd(state))

	return rootCmd
}

// resolveServerAddress applies the precedence Flag > Env Var > Default
func resolveServerAddress(flagChanged bool, flagValue string) string {
	if !flagChanged {
		if envAddr := os.Getenv(constants.EnvServerAddress); envAddr != "" {
			return envAddr
		}
	}
	return flagValue
}

// initClient initializes the API client
func (s *cliState) initClient(cmd *cobra.Command) error {
	if clientInstance != nil {
		s.apiClient = clientInstance
		return nil
	}

	timeout, err := cmd.Flags().GetDuration(flagTimeout)
	if err != nil {
		return err
	}

	s.apiClient, err = client.NewClient(&client.Options{
		BaseURL: s.serverAddress,
		Timeout: timeout,
		OwnerID: s.ownerID,
	})
	return err
}

// requireOwnerID fails when no acting user was given
func (s *cliState) requireOwnerID() error {
	if s.ownerID == 0 {
		return fmt.Errorf("required flag(s) \"%s\" not set", flagOwnerID)
	}
	return nil
}

// Execute builds the command tree and runs it
func Execute() error {
	return NewRootCmd().Execute()
}

func newHealthCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API server is up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := state.apiClient.HealthCheck(cmd.Context())
			if err != nil {
				return fmt.Errorf("error checking health: %w", err)
			}
			return printJSON(cmd, status)
		},
	}
}
