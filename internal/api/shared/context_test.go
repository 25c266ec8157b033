package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetTraceID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetTraceID(ctx), "Expected empty trace ID in fresh context")

	ctxWithTrace := SetTraceID(ctx)

	traceID := GetTraceID(ctxWithTrace)
	assert.NotEmpty(t, traceID)
	assert.Len(t, traceID, 32, "Expected 32 hex characters (16 bytes)")

	// The original context is untouched.
	assert.Empty(t, GetTraceID(ctx))
}

func TestGetTraceIDWithInvalidContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TraceIDKey, 123) // not a string

	assert.Empty(t, GetTraceID(ctx))
}

func TestGenerateTraceID(t *testing.T) {
	traceID := generateTraceID()
	assert.Len(t, traceID, 32)

	_, err := hex.DecodeString(traceID)
	assert.NoError(t, err, "Expected valid hex string")

	// Collisions across many IDs would indicate a broken source.
	const iterations = 1000
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := generateTraceID()
		assert.Len(t, id, 32)
		assert.False(t, seen[id], "Expected all trace IDs to be unique")
		seen[id] = true
	}

	assert.Len(t, seen, iterations)
}

// failingReader stands in for a broken crypto/rand source.
type failingReader struct{}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("simulated rand failure")
}

// traceIDFromReader replays generateTraceID's read-or-fallback decision
// against an injected reader; rand.Reader itself cannot be swapped out.
func traceIDFromReader(reader io.Reader) string {
	b := make([]byte, TraceIDLength)
	n, err := reader.Read(b)

	if err != nil || n != TraceIDLength {
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

func TestGenerateTraceIDWithRandFailure(t *testing.T) {
	traceID := traceIDFromReader(&failingReader{})

	assert.NotEmpty(t, traceID, "Expected a fallback trace ID after rand failure")
	assert.Len(t, traceID, 32)

	_, err := hex.DecodeString(traceID)
	assert.NoError(t, err)
}

func TestGenerateTraceIDWithPartialRead(t *testing.T) {
	// A reader that yields only half the requested bytes triggers the fallback.
	limitReader := io.LimitReader(rand.Reader, TraceIDLength/2)

	traceID := traceIDFromReader(limitReader)

	assert.NotEmpty(t, traceID)
	assert.Len(t, traceID, 32)

	_, err := hex.DecodeString(traceID)
	assert.NoError(t, err)
}

func TestFallbackTraceIDUniqueness(t *testing.T) {
	const iterations = 100
	seen := make(map[string]bool, iterations)

	for i := 0; i < iterations; i++ {
		id := generateFallbackTraceID()
		assert.Len(t, id, 32)
		_, err := hex.DecodeString(id)
		require.NoError(t, err, "Fallback ID must be valid hex")

		// The fallback mixes in timestamps; let them tick over.
		time.Sleep(time.Millisecond)

		assert.False(t, seen[id], "Expected all fallback trace IDs to be unique")
		seen[id] = true
	}

	assert.Len(t, seen, iterations)
}
