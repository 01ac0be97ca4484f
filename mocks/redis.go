package mocks

import (
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/JabirC/Closet/utils/redislog"
)

// NewRedisMock returns a real *redis.Client + redismock controller.
// Tests ExpectGet/Set/Del/Publish and assert expectations.
func NewRedisMock() (*redis.Client, redismock.ClientMock) {
	return redismock.NewClientMock()
}

// NewRedisLogHookWithMock builds a real redislog.Hook over a mocked client so
// tests can assert the LPUSH/LTRIM/EXPIRE calls made for a log line.
func NewRedisLogHookWithMock(key string) (*redislog.Hook, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	return redislog.New(rc, key, 100, 24*time.Hour, logrus.InfoLevel), mock
}
