package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionRoundTrip(t *testing.T) {
	url := os.Getenv("GROVE_TEST_MONGO_URL")
	if url == "" {
		t.Skip("GROVE_TEST_MONGO_URL not set")
	}
	ctx := context.Background()
	c, err := Dial(url, "test_"+uuid.NewString())
	require.NoError(t, err)
	defer c.Close()
	defer c.collection().DropCollection()

	observations := []grove.Observation{
		grove.NewObservation("A", 1, 2),
		grove.NewObservation("B", 3, 4),
		grove.NewObservation("A", 5, 6),
	}
	n, err := c.Write(ctx, observations)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	obs, err := c.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, observations, obs.Observations())
}

func TestOpenDefaultCollection(t *testing.T) {
	assert.Equal(t, DefaultCollection, Open(nil, "").name)
	assert.Equal(t, "iris", Open(nil, "iris").name)
}
