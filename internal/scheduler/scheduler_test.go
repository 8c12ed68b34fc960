package scheduler

import (
	"io"
	"testing"

	"github.com/sdko-org/website-generator/internal/workflow"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestStartWithDailySpec(t *testing.T) {
	wf := workflow.New(testLogger(), nil, nil, nil)
	s := New(testLogger(), wf, "0 0 * * *")

	require.NoError(t, s.Start())
	s.Stop()
}

func TestStartRejectsInvalidSpec(t *testing.T) {
	wf := workflow.New(testLogger(), nil, nil, nil)
	s := New(testLogger(), wf, "not a cron spec")

	assert.Error(t, s.Start())
	s.Stop()
}
