package publisher

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

const defaultStreamPrefix = "fixtures.completed"

type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type StreamConfig struct {
	Prefix  string
	MaxLen  int64
	Timeout time.Duration
}

// StreamPublisher appends completed fixtures to a per-league Redis stream.
type StreamPublisher struct {
	client  streamClient
	cfg     StreamConfig
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

type fixtureCompletedMessage struct {
	FixtureID    string    `json:"fixture_id"`
	LeagueID     string    `json:"league_id"`
	Gameweek     int       `json:"gameweek"`
	HomeTeamID   string    `json:"home_team_id"`
	AwayTeamID   string    `json:"away_team_id"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
	WinnerTeamID string    `json:"winner_team_id,omitempty"`
	Referee      string    `json:"referee,omitempty"`
	Seed         uint64    `json:"seed"`
	FinishedAt   time.Time `json:"finished_at"`
}

func NewStreamPublisher(client streamClient, cfg StreamConfig, breaker *resilience.CircuitBreaker, logger *logging.Logger) *StreamPublisher {
	if strings.TrimSpace(cfg.Prefix) == "" {
		cfg.Prefix = defaultStreamPrefix
	}
	if breaker == nil {
		breaker = resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{Name: "redis-stream"})
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &StreamPublisher{client: client, cfg: cfg, breaker: breaker, logger: logger}
}

func (p *StreamPublisher) PublishFixtureCompleted(ctx context.Context, item fixture.Fixture) error {
	msg := fixtureCompletedMessage{
		FixtureID:    item.ID,
		LeagueID:     item.LeagueID,
		Gameweek:     item.Gameweek,
		HomeTeamID:   item.HomeTeamID,
		AwayTeamID:   item.AwayTeamID,
		HomeScore:    item.HomeScore,
		AwayScore:    item.AwayScore,
		WinnerTeamID: item.WinnerTeamID,
		Referee:      item.Result.Referee,
		Seed:         item.Result.Seed,
	}
	if item.FinishedAt != nil {
		msg.FinishedAt = item.FinishedAt.UTC()
	}

	data, err := sonic.Marshal(msg)
	if err != nil {
		return crerr.Wrapf(err, "marshal completed fixture %s", item.ID)
	}

	stream := p.streamKey(item.LeagueID)
	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"data":       string(data),
			"fixture_id": item.ID,
			"score":      strconv.Itoa(item.HomeScore) + "-" + strconv.Itoa(item.AwayScore),
		},
	}
	if p.cfg.MaxLen > 0 {
		args.MaxLen = p.cfg.MaxLen
		args.Approx = true
	}

	err = p.breaker.Do(ctx, func(ctx context.Context) error {
		if p.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
			defer cancel()
		}
		return p.client.XAdd(ctx, args).Err()
	})
	if err != nil {
		return crerr.Wrapf(err, "publish completed fixture to stream %s", stream)
	}

	p.logger.DebugContext(ctx, "published completed fixture",
		"stream", stream,
		"fixture_id", item.ID,
	)
	return nil
}

func (p *StreamPublisher) streamKey(leagueID string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(p.cfg.Prefix)
	_ = buf.WriteByte('.')
	_, _ = buf.WriteString(strings.TrimSpace(leagueID))
	return buf.String()
}

// NoopPublisher drops every event; used when no Redis address is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishFixtureCompleted(context.Context, fixture.Fixture) error {
	return nil
}
