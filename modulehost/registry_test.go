package modulehost

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadProbesByPriority(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry[string]("test capability")
	r.Register("low", 1, "low-impl")
	r.Register("high", 100, "high-impl")
	r.Register("mid", 50, "mid-impl")

	var probed []string
	won, err := r.Load(ctx, "", func(_ context.Context, c Candidate[string]) error {
		probed = append(probed, c.Name)
		if c.Name != "mid" {
			return fmt.Errorf("nope")
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "mid", won.Name)
	require.Equal(t, "mid-impl", won.Impl)
	require.Equal(t, []string{"high", "mid"}, probed)
}

func TestLoadStopsAtFirstSuccess(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry[int]("test capability")
	r.Register("a", 10, 1)
	r.Register("b", 10, 2)

	probeCount := 0
	won, err := r.Load(ctx, "", func(_ context.Context, c Candidate[int]) error {
		probeCount++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, probeCount)
	// ties keep registration order
	require.Equal(t, "a", won.Name)
}

func TestLoadPreferredOnly(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry[int]("test capability")
	r.Register("a", 100, 1)
	r.Register("b", 1, 2)

	var probed []string
	won, err := r.Load(ctx, "b", func(_ context.Context, c Candidate[int]) error {
		probed = append(probed, c.Name)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "b", won.Name)
	require.Equal(t, []string{"b"}, probed)
}

func TestLoadPreferredUnknown(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry[int]("test capability")
	r.Register("a", 100, 1)

	_, err := r.Load(ctx, "no-such-module", func(_ context.Context, c Candidate[int]) error {
		t.Fatalf("must not be probed")
		return nil
	})
	var notFound ErrNotFound
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "no-such-module", notFound.Preferred)
}

func TestLoadExhaustion(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry[int]("test capability")
	r.Register("a", 2, 1)
	r.Register("b", 1, 2)

	probeCount := 0
	_, err := r.Load(ctx, "", func(_ context.Context, c Candidate[int]) error {
		probeCount++
		return fmt.Errorf("nope")
	})
	var notFound ErrNotFound
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, 2, probeCount)
}

func TestRegisterTwicePanics(t *testing.T) {
	r := NewRegistry[int]("test capability")
	r.Register("a", 0, 1)
	require.Panics(t, func() {
		r.Register("a", 0, 2)
	})
}
