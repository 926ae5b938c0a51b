// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the open batch
//
// Get reports one of cacheMiss, cacheHit or cacheDeleted so a pending
// delete can hide the committed value
type Cache interface {
	Get(string) ([]byte, int)
	Set(int, string, []byte)
	Clear()
}

// queued operations
const (
	dbPut = iota
	dbDelete
)

// lookup results
const (
	cacheMiss = iota
	cacheHit
	cacheDeleted
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    int
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

func (c *dbCache) Get(key string) ([]byte, int) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, cacheMiss
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, cacheDeleted
	}
	return data.value, cacheHit
}

func (c *dbCache) Set(op int, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
