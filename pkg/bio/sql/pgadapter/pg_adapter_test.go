package pgadapter

import (
	"context"
	"os"
	"testing"

	biosql "github.com/pbanos/grove/pkg/bio/sql"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholder(t *testing.T) {
	a := &adapter{}
	assert.Equal(t, "$1", a.Placeholder(1))
	assert.Equal(t, "$12", a.Placeholder(12))
}

func TestSetRoundTrip(t *testing.T) {
	url := os.Getenv("GROVE_TEST_PG_URL")
	if url == "" {
		t.Skip("GROVE_TEST_PG_URL not set")
	}
	ctx := context.Background()
	adapter, err := New(url)
	require.NoError(t, err)
	defer adapter.Close()
	_, err = adapter.DB().ExecContext(ctx, "DROP TABLE IF EXISTS "+biosql.TableName)
	require.NoError(t, err)

	set, err := biosql.CreateSet(ctx, adapter, 2)
	require.NoError(t, err)
	observations := []grove.Observation{
		grove.NewObservation("A", 1, 2),
		grove.NewObservation("B", 3, 4),
	}
	_, err = set.Write(ctx, observations)
	require.NoError(t, err)

	reopened, err := biosql.OpenSet(ctx, adapter)
	require.NoError(t, err)
	obs, err := reopened.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, observations, obs.Observations())
}
