package cache

import "sync"

type EvictedCallback = func(string, interface{})

// LruCache is a fixed-capacity map that evicts the least recently used
// entry. The map indexes list nodes and the list keeps recency order,
// hottest at the head.
type LruCache struct {
	mu       sync.Mutex
	capacity int64
	onEvited EvictedCallback
	Maps     map[string]*LinkedListNode
	dList    *List
}

func Default(cap int64) *LruCache {
	return NewLruCache(cap, nil)
}

func NewLruCache(cap int64, callback EvictedCallback) *LruCache {
	if cap < 1 {
		cap = 1
	}
	return &LruCache{
		capacity: cap,
		Maps:     make(map[string]*LinkedListNode, cap),
		dList:    NewList(),
		onEvited: callback,
	}
}

func (l *LruCache) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.Maps)
}

func (l *LruCache) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.onEvited != nil {
		for k, v := range l.Maps {
			l.onEvited(k, v.Value)
		}
	}
	l.dList = NewList()
	l.Maps = make(map[string]*LinkedListNode)
}

func (l *LruCache) Get(key string) (interface{}, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	pv, ok := l.Maps[key]
	if !ok {
		return nil, false
	}
	l.dList.toHead(pv)
	return pv.Value, true
}

func (l *LruCache) Put(key string, value interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n, ok := l.Maps[key]; ok {
		n.Value = value
		l.dList.toHead(n)
		return
	}
	if l.dList.Len() == l.capacity {
		l.evict()
	}
	l.Maps[key] = l.dList.PushFront(key, value)
}

func (l *LruCache) evict() {
	tail := l.dList.Back()
	if tail == nil {
		return
	}
	l.dList.Remove(tail)
	delete(l.Maps, tail.Key)
	if l.onEvited != nil {
		l.onEvited(tail.Key, tail.Value)
	}
}
