// Package redis connects to Redis and exposes a prefixed key/value Storage
// on top of github.com/redis/go-redis/v9.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := redis.NewStorageWithConfig(client, cfg)
//	_ = store.Set(ctx, "session:abc", payload, time.Hour)
//
// Connect retries the initial ping RetryAttempts times. Healthcheck returns a
// probe function suitable for readiness endpoints.
//
// Errors are sentinels joined with the driver error, so errors.Is works on
// both.
package redis
