package util

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariebrainware/clinique/config"
	"github.com/redis/go-redis/v9"
)

func sessionKey(token string) string {
	return "session:" + token
}

func accountSessionsKey(accountKey string) string {
	return "account_sessions:" + accountKey
}

// AccountKey identifies an account across the staff and doctor tables, e.g. "staff:1".
func AccountKey(kind string, id uint) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

var removeTokenScript = redis.NewScript(`
	local removed = redis.call('SREM', KEYS[1], ARGV[1])
	if removed > 0 then
		local count = redis.call('SCARD', KEYS[1])
		if count == 0 then
			redis.call('DEL', KEYS[1])
		end
	end
	return removed
`)

// StoreSession caches token -> accountKey for ttl and records the token in the
// account's session set. The set has no TTL and is cleaned up explicitly.
// It is a no-op when Redis is not available.
func StoreSession(ctx context.Context, token, accountKey string, ttl time.Duration) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	pipe := rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(token), accountKey, ttl)
	pipe.SAdd(ctx, accountSessionsKey(accountKey), token)
	pipe.Persist(ctx, accountSessionsKey(accountKey))
	_, err := pipe.Exec(ctx)
	return err
}

// SessionAccount returns the account key cached for token. ok is false when
// Redis is not available or the token is unknown.
func SessionAccount(ctx context.Context, token string) (accountKey string, ok bool, err error) {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return "", false, nil
	}
	v, err := rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// RemoveSession drops a single session token.
func RemoveSession(ctx context.Context, accountKey, token string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	if err := rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return err
	}
	return removeTokenScript.Run(ctx, rdb, []string{accountSessionsKey(accountKey)}, token).Err()
}

// InvalidateAccountSessions deletes every cached session of the account.
func InvalidateAccountSessions(ctx context.Context, accountKey string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return nil
	}
	setKey := accountSessionsKey(accountKey)
	members, err := rdb.SMembers(ctx, setKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	for _, tok := range members {
		if err := rdb.Del(ctx, sessionKey(tok)).Err(); err != nil {
			return err
		}
	}
	return rdb.Del(ctx, setKey).Err()
}
