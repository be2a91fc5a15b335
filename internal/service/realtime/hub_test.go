package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rllL1/portfolio/internal/domain"
	"github.com/rllL1/portfolio/pkg/logger"
)

func receive(t *testing.T, sub *Subscription) domain.ChangeEvent {
	t.Helper()
	select {
	case ev := <-sub.Events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return domain.ChangeEvent{}
	}
}

func TestHub_PublishFiltersByTable(t *testing.T) {
	hub := NewHub(logger.NewTestLogger(t))
	ctx := context.Background()

	chat := hub.Subscribe(domain.TableChatMessages)
	all := hub.Subscribe("")
	defer hub.Unsubscribe(chat)
	defer hub.Unsubscribe(all)

	hub.Publish(ctx, domain.ChangeEvent{Type: domain.ChangeInsert, Table: domain.TableProjects, RecordID: "p1"})
	hub.Publish(ctx, domain.ChangeEvent{Type: domain.ChangeInsert, Table: domain.TableChatMessages, RecordID: "c1"})

	assert.Equal(t, "c1", receive(t, chat).RecordID)
	assert.Equal(t, "p1", receive(t, all).RecordID)
	assert.Equal(t, "c1", receive(t, all).RecordID)

	select {
	case ev := <-chat.Events:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestHub_Handlers(t *testing.T) {
	hub := NewHub(logger.NewTestLogger(t))

	var got []string
	hub.OnChange(func(ev domain.ChangeEvent) {
		got = append(got, ev.Table)
	})

	hub.Publish(context.Background(), domain.ChangeEvent{Table: domain.TableSkills})
	hub.Publish(context.Background(), domain.ChangeEvent{Table: domain.TableHeroSection})

	assert.Equal(t, []string{domain.TableSkills, domain.TableHeroSection}, got)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(logger.NewTestLogger(t))

	sub := hub.Subscribe("")
	require.Equal(t, 1, hub.SubscriberCount())

	hub.Unsubscribe(sub)
	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-sub.Events
	assert.False(t, open)

	// publishing after unsubscribe must not panic
	hub.Publish(context.Background(), domain.ChangeEvent{Table: domain.TableSkills})
}

func TestHub_SlowSubscriberDropsEvents(t *testing.T) {
	hub := NewHub(logger.NewTestLogger(t))
	sub := hub.Subscribe("")
	defer hub.Unsubscribe(sub)

	for i := 0; i < subscriberBuffer+10; i++ {
		hub.Publish(context.Background(), domain.ChangeEvent{Table: domain.TableSkills})
	}
	assert.Len(t, sub.Events, subscriberBuffer)
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(logger.NewTestLogger(t))
	a := hub.Subscribe("")
	b := hub.Subscribe(domain.TableProjects)

	hub.Close()

	_, ok := <-a.Events
	assert.False(t, ok)
	_, ok = <-b.Events
	assert.False(t, ok)
	assert.Equal(t, 0, hub.SubscriberCount())

	// Unsubscribe after Close must not close twice
	hub.Unsubscribe(a)
}

func TestHub_SubscribeAfterClose(t *testing.T) {
	hub := NewHub(logger.NewTestLogger(t))
	hub.Close()

	sub := hub.Subscribe(domain.TableChatMessages)
	select {
	case _, ok := <-sub.Events:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription opened after Close is still open")
	}
	assert.Equal(t, 0, hub.SubscriberCount())

	hub.Publish(context.Background(), domain.ChangeEvent{Table: domain.TableChatMessages})
	hub.Unsubscribe(sub)
}
