package services_test

import (
	"sync"
	"testing"
	"time"

	"knowledgehub-api/services"

	"github.com/stretchr/testify/assert"
)

func TestArticleLockerSerializesSameArticle(t *testing.T) {
	locker := services.NewArticleLocker()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			locker.Lock(1)
			defer locker.Unlock(1)
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestArticleLockerIndependentArticlesDoNotBlock(t *testing.T) {
	locker := services.NewArticleLocker()

	locker.Lock(1)
	defer locker.Unlock(1)

	done := make(chan struct{})
	go func() {
		locker.Lock(2)
		locker.Unlock(2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different article blocked")
	}
}

func TestArticleLockerReusableAfterRelease(t *testing.T) {
	locker := services.NewArticleLocker()

	for i := 0; i < 3; i++ {
		locker.Lock(9)
		locker.Unlock(9)
	}

	done := make(chan struct{})
	go func() {
		locker.Lock(9)
		locker.Unlock(9)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock was not released")
	}
}
