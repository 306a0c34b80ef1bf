package processtest_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schmitthub/tsinit/internal/process"
	"github.com/schmitthub/tsinit/internal/process/processtest"
)

func TestRecorder_ReplaysResultsInOrder(t *testing.T) {
	boom := errors.New("boom")
	r := processtest.NewRecorder(processtest.Result{Stderr: "ERR!\n", Err: boom})

	var stderr bytes.Buffer
	err := r.Run(context.Background(), process.Command{Dir: "/p", Name: "npm", Args: []string{"install"}, Stderr: &stderr})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "ERR!\n", stderr.String())

	assert.NoError(t, r.Run(context.Background(), process.Command{Dir: "/p", Name: "git", Args: []string{"status"}}))

	assert.Equal(t, []processtest.Call{
		{Dir: "/p", Argv: []string{"npm", "install"}},
		{Dir: "/p", Argv: []string{"git", "status"}},
	}, r.Calls())
}
