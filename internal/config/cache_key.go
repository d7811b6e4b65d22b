package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CourseResultsChannel returns the Redis PubSub channel carrying exam result
// alerts for a course.
func (r *CacheKeyStruct) CourseResultsChannel(courseID int) string {
	return fmt.Sprintf("course:%d:results", courseID)
}

// LoginAttemptsKey returns the counter key for login attempts from one IP.
func (r *CacheKeyStruct) LoginAttemptsKey(ip string) string {
	return fmt.Sprintf("login_attempts:%s", ip)
}

var CacheKey = NewCacheKeyStruct()
