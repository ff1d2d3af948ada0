package services

import "sync"

// ArticleLocker serializes mutations per article id. The version store and
// the live store have no shared transaction, so Update and Restore must not
// interleave for the same article.
type ArticleLocker struct {
	mu    sync.Mutex
	locks map[uint]*articleLock
}

type articleLock struct {
	mu   sync.Mutex
	refs int
}

func NewArticleLocker() *ArticleLocker {
	return &ArticleLocker{locks: make(map[uint]*articleLock)}
}

func (l *ArticleLocker) Lock(articleID uint) {
	l.mu.Lock()
	entry, ok := l.locks[articleID]
	if !ok {
		entry = &articleLock{}
		l.locks[articleID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

func (l *ArticleLocker) Unlock(articleID uint) {
	l.mu.Lock()
	entry := l.locks[articleID]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, articleID)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
