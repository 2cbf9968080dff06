package test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/celestiaorg/jobtracker/internal/db/repos"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
)

// DefaultTestTimeout is the default timeout for test suites.
const DefaultTestTimeout = 30 * time.Second

// Suite encapsulates all components needed for integration testing.
// It provides a complete test setup with:
//   - File-backed SQLite database
//   - Real API server
//   - Real API client
type Suite struct {
	t *testing.T

	// Server components
	App    *fiber.App
	Server *httptest.Server

	// APIClient sends no identity. Use ClientFor to act as a user.
	APIClient client.Client

	// Database components
	DB      *gorm.DB
	JobRepo *repos.JobRepository

	// Context management
	ctx        context.Context
	cancelFunc context.CancelFunc

	// Cleanup function
	cleanup func()
}

// NewSuite creates a new test suite.
// The suite must be cleaned up after use by calling Cleanup.
func NewSuite(t *testing.T) *Suite {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTestTimeout)

	suite := &Suite{
		t:          t,
		ctx:        ctx,
		cancelFunc: cancel,
	}

	suite.cleanup = func() {
		if suite.cancelFunc != nil {
			suite.cancelFunc()
		}
	}

	// Setup database by default
	SetupTestDB(suite, nil)

	// Setup server by default
	SetupServer(suite)

	return suite
}

// Cleanup tears down the test suite, releasing all resources.
// This should be deferred immediately after creating the suite.
func (s *Suite) Cleanup() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// T returns the testing.T instance for this suite
func (s *Suite) T() *testing.T {
	return s.t
}

// Context returns the suite's context, which is automatically
// canceled when the suite is cleaned up.
func (s *Suite) Context() context.Context {
	return s.ctx
}

// Require returns a require.Assertions instance for this suite.
// This is a convenience method to avoid passing t around.
func (s *Suite) Require() *require.Assertions {
	return require.New(s.t)
}
