// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/translator/dictionary"
)

// Expired translations are swept every 5 minutes
const lookupCacheCleanup = 5 * time.Minute

// NewLookupCache creates a cache of recent translations. A zero ttl keeps
// entries until the process exits.
func NewLookupCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}
	return cache.New(ttl, lookupCacheCleanup)
}

func CacheTranslation(c *cache.Cache, pair dictionary.WordPair) {
	// Set instead of Add so a repeated probe refreshes the expiry
	c.Set(pair.Key(), pair, cache.DefaultExpiration)
}

func GetCachedTranslation(c *cache.Cache, key string) (dictionary.WordPair, bool) {
	val, ok := c.Get(key)
	if !ok {
		return dictionary.WordPair{}, false
	}
	return val.(dictionary.WordPair), true
}
