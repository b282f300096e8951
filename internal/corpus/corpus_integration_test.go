//go:build integration

package corpus

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM job_postings WHERE source LIKE 'test-%'")

	return db
}

func TestIntegration_Corpus_InsertAndRead(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	postedAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	id, err := db.InsertPosting(ctx, "test-posting-1", "Python and Kubernetes required.", postedAt)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	records, err := db.AllRecords(ctx)
	require.NoError(t, err)

	var found bool
	for _, rec := range records {
		if rec.ID == id {
			found = true
			assert.Equal(t, "Python and Kubernetes required.", rec.Text)
			assert.Empty(t, rec.Label)
			assert.True(t, rec.PostedAt.Equal(postedAt))
		}
	}
	assert.True(t, found, "inserted posting should come back from AllRecords")
}

func TestIntegration_Corpus_SampleRespectsLimit(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := db.InsertPosting(ctx, "test-sample", "Rust posting body.", time.Now())
		require.NoError(t, err)
	}

	records, err := db.SampleRecords(ctx, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(records), 3)

	count, err := db.CountRecords(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 5)
}

func TestIntegration_Corpus_UpdateLabelsIsTransactional(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	id1, err := db.InsertPosting(ctx, "test-labels-1", "Python here.", time.Now())
	require.NoError(t, err)
	id2, err := db.InsertPosting(ctx, "test-labels-2", "Kafka there.", time.Now())
	require.NoError(t, err)

	labels := map[uuid.UUID]string{
		id1: "Python",
		id2: "Kafka",
	}
	require.NoError(t, db.UpdateLabels(ctx, labels))

	records, err := db.AllRecords(ctx)
	require.NoError(t, err)

	got := make(map[uuid.UUID]string)
	for _, rec := range records {
		got[rec.ID] = rec.Label
	}
	assert.Equal(t, "Python", got[id1])
	assert.Equal(t, "Kafka", got[id2])
}

func TestIntegration_Corpus_UpdateLabelsEmptyMapIsNoOp(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()

	assert.NoError(t, db.UpdateLabels(context.Background(), nil))
}
