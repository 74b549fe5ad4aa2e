package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/domain"
	"github.com/GoSim-25-26J-441/project-dashboard/internal/portfolio/events"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Ping(context.Background()).Err())
	return client, mr
}

func notification(companyID, projectID int) events.Notification {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return events.ProjectCreated(companyID, "Company 1", domain.Project{ID: projectID}, at)
}

func TestProjectCreated(t *testing.T) {
	n := notification(4, 17)

	assert.Equal(t, 4, n.CompanyID)
	assert.Equal(t, 17, n.ProjectID)
	assert.Equal(t, "Novo Projeto Criado com sucesso! ✅", n.Title)
	assert.Equal(t, "Clique abaixo para acessar os projetos de Company 1", n.Description)
	assert.Equal(t, "/admin/project/4", n.Link)
}

func TestRedisNotifier(t *testing.T) {
	client, mr := setupTestRedis(t)
	ctx := context.Background()
	notifier := events.NewRedisNotifier(client)

	t.Run("stores newest first", func(t *testing.T) {
		require.NoError(t, notifier.Notify(ctx, notification(1, 1)))
		require.NoError(t, notifier.Notify(ctx, notification(1, 2)))

		got, err := notifier.Recent(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ProjectID)
		assert.Equal(t, 1, got[1].ProjectID)
		assert.True(t, mr.TTL(events.RecentKey(1)) > 0)
	})

	t.Run("caps the list", func(t *testing.T) {
		for i := 0; i < events.RecentLimit+5; i++ {
			require.NoError(t, notifier.Notify(ctx, notification(2, i)))
		}
		got, err := notifier.Recent(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, got, events.RecentLimit)
		assert.Equal(t, events.RecentLimit+4, got[0].ProjectID)
	})

	t.Run("unknown company is empty", func(t *testing.T) {
		got, err := notifier.Recent(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("publishes on the company channel", func(t *testing.T) {
		sub := client.Subscribe(ctx, events.Channel(3))
		defer sub.Close()
		_, err := sub.Receive(ctx)
		require.NoError(t, err)

		require.NoError(t, notifier.Notify(ctx, notification(3, 42)))

		select {
		case msg := <-sub.Channel():
			assert.Contains(t, msg.Payload, `"project_id":42`)
		case <-time.After(2 * time.Second):
			t.Fatal("no message published")
		}
	})
}

func TestRedisNotifier_ConnectionError(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	notifier := events.NewRedisNotifier(client)
	assert.Error(t, notifier.Notify(context.Background(), notification(1, 1)))

	_, err := notifier.Recent(context.Background(), 1)
	assert.Error(t, err)
}

func TestMemoryNotifier(t *testing.T) {
	ctx := context.Background()
	notifier := events.NewMemoryNotifier()

	for i := 0; i < events.RecentLimit+3; i++ {
		require.NoError(t, notifier.Notify(ctx, notification(1, i)))
	}

	got, err := notifier.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, events.RecentLimit)
	assert.Equal(t, events.RecentLimit+2, got[0].ProjectID)

	got[0].Title = "changed"
	again, _ := notifier.Recent(ctx, 1)
	assert.NotEqual(t, "changed", again[0].Title)

	empty, err := notifier.Recent(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
