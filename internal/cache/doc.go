// Package cache provides the recency list behind least recently used
// recycling.
//
// # List[K]
//
// A doubly-linked list ordered from most to least recently used. Keys are
// pushed at the front and taken from either end in O(1):
//
//	l := cache.NewList[*Frame]()
//	l.PushFront(f)
//	oldest, ok := l.RemoveOldest()
//
// image.Pool keeps one list per bucket of free images and takes from the
// tail in LRU mode or the head otherwise.
//
// # Thread Safety
//
// List is not safe for concurrent use. Owners guard it with their own lock.
package cache
