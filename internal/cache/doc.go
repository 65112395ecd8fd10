// Package cache memoizes whole HTTP responses for a fixed time window.
//
// Responses are stored in a Store. RedisStore shares entries between
// processes; MemoryStore keeps them in the current process and is used when
// no Redis address is configured and in tests.
package cache
