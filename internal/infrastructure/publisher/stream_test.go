package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/platform/resilience"
)

type recordingStream struct {
	calls []*redis.XAddArgs
	err   error
}

func (r *recordingStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	r.calls = append(r.calls, a)
	if r.err != nil {
		return redis.NewStringResult("", r.err)
	}
	return redis.NewStringResult("1-0", nil)
}

func TestStreamPublisher_PublishFixtureCompleted(t *testing.T) {
	t.Parallel()

	client := &recordingStream{}
	pub := NewStreamPublisher(client, StreamConfig{MaxLen: 100}, nil, logging.NewNop())

	finished := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	err := pub.PublishFixtureCompleted(context.Background(), fixture.Fixture{
		ID:           "f1",
		LeagueID:     "tr-super-lig-2026",
		HomeScore:    2,
		AwayScore:    1,
		WinnerTeamID: "home",
		FinishedAt:   &finished,
		Result:       fixture.Result{Seed: 7},
	})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(client.calls) != 1 {
		t.Fatalf("expected one XADD, got %d", len(client.calls))
	}
	call := client.calls[0]
	if call.Stream != "fixtures.completed.tr-super-lig-2026" {
		t.Fatalf("unexpected stream key: %s", call.Stream)
	}
	if !call.Approx || call.MaxLen != 100 {
		t.Fatalf("expected approximate trimming, got maxlen=%d approx=%t", call.MaxLen, call.Approx)
	}

	values, _ := call.Values.(map[string]any)
	if values["score"] != "2-1" {
		t.Fatalf("unexpected score field: %v", values["score"])
	}

	var msg fixtureCompletedMessage
	if err := sonic.UnmarshalString(values["data"].(string), &msg); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if msg.FixtureID != "f1" || msg.Seed != 7 || !msg.FinishedAt.Equal(finished) {
		t.Fatalf("unexpected payload: %+v", msg)
	}
}

func TestStreamPublisher_OpensBreakerOnFailures(t *testing.T) {
	t.Parallel()

	client := &recordingStream{err: errors.New("connection refused")}
	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Name:             "redis",
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})
	pub := NewStreamPublisher(client, StreamConfig{}, breaker, logging.NewNop())

	for range 3 {
		if err := pub.PublishFixtureCompleted(context.Background(), fixture.Fixture{ID: "f1", LeagueID: "l1"}); err == nil {
			t.Fatalf("expected publish error")
		}
	}

	if len(client.calls) != 2 {
		t.Fatalf("expected breaker to short-circuit third call, got %d calls", len(client.calls))
	}
}
