// README: Conversation history store backed by Redis lists.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xXWapixelXx/Uber-Copilot/internal/types"
)

const (
	historyKeyPrefix = "assistant:history:%s"
	// Keep the last N turns; the context window does not need more.
	historyDepth = 20
	// Conversations go stale well within a week.
	historyTTL = 7 * 24 * time.Hour
)

// HistoryStore keeps the recent chat turns per earner so follow-up
// questions stay coherent. A nil Redis client disables history silently.
type HistoryStore struct {
	redis *redis.Client
}

func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{redis: client}
}

// Append records one turn ("user: ..." or "assistant: ...").
func (h *HistoryStore) Append(ctx context.Context, id types.ID, role, text string) error {
	if h.redis == nil {
		return nil
	}
	key := historyKey(id)
	pipe := h.redis.Pipeline()
	pipe.LPush(ctx, key, role+": "+text)
	pipe.LTrim(ctx, key, 0, historyDepth-1)
	pipe.Expire(ctx, key, historyTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// Recent returns the stored turns, oldest first.
func (h *HistoryStore) Recent(ctx context.Context, id types.ID) ([]string, error) {
	if h.redis == nil {
		return nil, nil
	}
	turns, err := h.redis.LRange(ctx, historyKey(id), 0, historyDepth-1).Result()
	if err != nil {
		return nil, err
	}
	// LPUSH stores newest first; reverse for prompt order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func historyKey(id types.ID) string {
	return fmt.Sprintf(historyKeyPrefix, strings.TrimSpace(string(id)))
}
