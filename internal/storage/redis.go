package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces every key written by RedisStore.
const DefaultRedisPrefix = "asteroidmania:"

// redisTimeout bounds every round trip so a dead server cannot stall a game.
const redisTimeout = 2 * time.Second

// RedisStore keeps a leaderboard shared by several servers. Each entry is
// a hash under <prefix>score:<id>; the sorted set <prefix>leaderboard
// ranks entries by score, with members encoded by rankMember so that
// equal scores list the oldest entry first.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to the Redis server at addr and checks it responds.
func OpenRedis(addr, prefix string) (*RedisStore, error) {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

func (r *RedisStore) key(parts ...string) string {
	k := r.prefix
	for _, p := range parts {
		k += p
	}
	return k
}

func (r *RedisStore) entryKey(id int64) string {
	return r.key("score:", strconv.FormatInt(id, 10))
}

// rankMember encodes id as a fixed-width member that sorts in reverse
// lexicographic order from the lowest id up.
func rankMember(id int64) string {
	return fmt.Sprintf("%019d", math.MaxInt64-id)
}

// memberID reverses rankMember.
func memberID(member string) (int64, error) {
	n, err := strconv.ParseInt(member, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("storage: bad leaderboard member %q: %w", member, err)
	}
	return math.MaxInt64 - n, nil
}

// Close closes the client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// SaveScore records a finished game and ranks it on the leaderboard.
func (r *RedisStore) SaveScore(e ScoreEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	id, err := r.client.Incr(ctx, r.key("score:id")).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate score id: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.entryKey(id),
			"player", e.Player,
			"session_id", e.SessionID,
			"score", e.Score,
			"created_at", e.CreatedAt.UTC().Format(time.RFC3339Nano),
		)
		pipe.ZAdd(ctx, r.key("leaderboard"), redis.Z{
			Score:  float64(e.Score),
			Member: rankMember(id),
		})
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

// TopScores returns the best scores, highest first.
func (r *RedisStore) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	members, err := r.client.ZRevRange(ctx, r.key("leaderboard"), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}
	ids := make([]int64, len(members))
	for i, m := range members {
		if ids[i], err = memberID(m); err != nil {
			return nil, err
		}
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.entryKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Hash expired or was deleted behind our back
			continue
		}
		e := ScoreEntry{
			ID:        ids[i],
			Player:    fields["player"],
			SessionID: fields["session_id"],
			CreatedAt: parseTime(fields["created_at"]),
		}
		e.Score, _ = strconv.Atoi(fields["score"])
		entries = append(entries, e)
	}
	return entries, nil
}

// HighScore returns the best score on the leaderboard, or 0 when empty.
func (r *RedisStore) HighScore() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	top, err := r.client.ZRevRangeWithScores(ctx, r.key("leaderboard"), 0, 0).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if len(top) == 0 {
		return 0, nil
	}
	return int(top[0].Score), nil
}

// ClearScores deletes the leaderboard and every entry it references.
func (r *RedisStore) ClearScores() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	members, err := r.client.ZRange(ctx, r.key("leaderboard"), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	keys := []string{r.key("leaderboard"), r.key("score:id")}
	for _, m := range members {
		id, err := memberID(m)
		if err != nil {
			return err
		}
		keys = append(keys, r.entryKey(id))
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
