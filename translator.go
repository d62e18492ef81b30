// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"

	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"

	"github.com/cybrota/translator/dictionary"
)

// Translator answers probes against a Dictionary. A bloom filter of stored
// keys turns most misses away before the tree is walked, and recent hits
// are kept in a cache.
type Translator struct {
	words       *dictionary.Dictionary
	bloomFilter *bloom.BloomFilter
	lookupCache *cache.Cache // nil when caching is disabled
}

func NewTranslator(words *dictionary.Dictionary, config LookupConfig) *Translator {
	size, hashes := config.BloomFilterSize, config.BloomFilterHashes
	if size == 0 {
		size = defaultConfig.Lookup.BloomFilterSize
	}
	if hashes == 0 {
		hashes = defaultConfig.Lookup.BloomFilterHashes
	}

	t := &Translator{
		words:       words,
		bloomFilter: bloom.New(size, hashes),
	}
	if config.EnableCache {
		t.lookupCache = NewLookupCache(config.CacheTTL)
	}

	// An empty dictionary simply leaves the filter empty
	_ = words.ForEachInOrder(func(p *dictionary.WordPair) {
		t.bloomFilter.AddString(p.Key())
	})
	return t
}

// Put inserts pair and records its key in the filter.
func (t *Translator) Put(pair dictionary.WordPair) error {
	if err := t.words.Put(pair); err != nil {
		return err
	}
	t.bloomFilter.AddString(pair.Key())
	return nil
}

// Lookup returns the stored pair for key. It fails with
// dictionary.ErrEmptyCollection or dictionary.ErrNotFound.
func (t *Translator) Lookup(key string) (dictionary.WordPair, error) {
	if t.words.Len() == 0 {
		return dictionary.WordPair{}, dictionary.ErrEmptyCollection
	}

	if t.lookupCache != nil {
		if pair, ok := GetCachedTranslation(t.lookupCache, key); ok {
			return pair, nil
		}
	}

	if !t.bloomFilter.TestString(key) {
		return dictionary.WordPair{}, fmt.Errorf("%w: %q", dictionary.ErrNotFound, key)
	}

	pair, err := t.words.Get(dictionary.NewProbe(key))
	if err != nil {
		return dictionary.WordPair{}, err
	}
	if t.lookupCache != nil {
		CacheTranslation(t.lookupCache, *pair)
	}
	return *pair, nil
}

// MightContain reports whether key may be stored. False means it is not.
func (t *Translator) MightContain(key string) bool {
	return t.bloomFilter.TestString(key)
}

func (t *Translator) Dictionary() *dictionary.Dictionary {
	return t.words
}

// describeLookupError renders a lookup failure the way the console driver
// prints it.
func describeLookupError(err error) string {
	if errors.Is(err, dictionary.ErrEmptyCollection) {
		return fmt.Sprintf("get() unsuccessful because %v", err)
	}
	return err.Error()
}
