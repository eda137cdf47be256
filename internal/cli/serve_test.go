package cli

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/stategate/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServe_StopsWhenContextEnds(t *testing.T) {
	opts := ServeOptions{Config: config.Config{
		Addr:        "127.0.0.1:0",
		LogLevel:    "error",
		Definitions: writeDoc(t, validDoc),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- RunServe(ctx, opts) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServe did not return after cancellation")
	}
}

func TestRunServe_InvalidDefinitions(t *testing.T) {
	opts := ServeOptions{Config: config.Config{
		Addr:        "127.0.0.1:0",
		LogLevel:    "error",
		Definitions: writeDoc(t, invalidDoc),
	}}

	err := RunServe(context.Background(), opts)
	require.Error(t, err)
}
