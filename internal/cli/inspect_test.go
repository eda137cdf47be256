package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/stategate/pkg/domain"
	"github.com/aretw0/stategate/pkg/engine"
	"github.com/aretw0/stategate/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `
gates:
  - entity: User
    attribute: status
    config:
      - state: pending
        human: Pending Activation
        transitions_to: active
      - state: active
        transitions_to: archived
      - state: archived
`

const invalidDoc = `
gates:
  - entity: User
    attribute: status
    config:
      - state: pending
        transitions_to: dummy
      - state: active
`

func writeDoc(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestRunValidate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RunValidate(&buf, InspectOptions{Path: writeDoc(t, validDoc)}))
	assert.Contains(t, buf.String(), "User#status (3 states)")

	buf.Reset()
	err := RunValidate(&buf, InspectOptions{Path: writeDoc(t, invalidDoc)})
	assert.ErrorIs(t, err, domain.ErrUnknownTarget)
	assert.Contains(t, buf.String(), "User#status transitions from :pending to invalid state :dummy")
}

func TestRunDescribe(t *testing.T) {
	path := writeDoc(t, validDoc)

	var buf bytes.Buffer
	require.NoError(t, RunDescribe(&buf, InspectOptions{Path: path}, "", ""))
	assert.Contains(t, buf.String(), "# User#status")
	assert.Contains(t, buf.String(), "| `pending` | Pending Activation | active |")

	buf.Reset()
	require.NoError(t, RunDescribe(&buf, InspectOptions{Path: path, JSON: true}, "User", "status"))
	var ds []engine.Description
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ds))
	require.Len(t, ds, 1)
	assert.Equal(t, "pending", ds[0].Default)

	err := RunDescribe(&buf, InspectOptions{Path: path}, "User", "role")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestRunGraph(t *testing.T) {
	path := writeDoc(t, validDoc)

	var buf bytes.Buffer
	require.NoError(t, RunGraph(&buf, InspectOptions{Path: path}, "User", "status", "active"))
	assert.Contains(t, buf.String(), "stateDiagram-v2")
	assert.Contains(t, buf.String(), "pending --> active")
	assert.Contains(t, buf.String(), "class active current")

	err := RunGraph(&buf, InspectOptions{Path: path}, "User", "status", "dummy")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestRunCheck(t *testing.T) {
	path := writeDoc(t, validDoc)

	tests := []struct {
		name     string
		from, to string
		wantErr  error
		contains string
	}{
		{name: "allowed", from: "pending", to: "active", contains: "may transition from :pending to :active"},
		{name: "forced", from: "pending", to: "force_archived", contains: "may transition"},
		{name: "denied", from: "pending", to: "archived", wantErr: domain.ErrInvalidTransition, contains: "cannot transition"},
		{name: "invalid", from: "pending", to: "dummy", wantErr: domain.ErrInvalidState, contains: "is not a valid state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := RunCheck(&buf, InspectOptions{Path: path}, "User", "status", tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}
