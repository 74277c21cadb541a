package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SiteSettingsKey returns the cache key for the public site-settings payload.
func (r *CacheKeyStruct) SiteSettingsKey() string {
	return "settings:public"
}

// NotificationChannel returns the Redis PubSub channel for newly created
// notifications, consumed by the WebSocket stream.
func (r *CacheKeyStruct) NotificationChannel() string {
	return "notifications:created"
}

// DownloadTrackKey returns the cache key guarding duplicate download tracking
// for a client address within a short window.
func (r *CacheKeyStruct) DownloadTrackKey(downloadID int, clientIP string) string {
	return fmt.Sprintf("download:%d:track:%s", downloadID, clientIP)
}

var CacheKey = NewCacheKeyStruct()
