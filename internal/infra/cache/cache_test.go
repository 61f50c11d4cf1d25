package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"brokerage-crm/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		cacheInstance *cache.RistrettoCache
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		cacheInstance.Close()
	})

	ginkgo.Context("GetSet", func() {
		ginkgo.It("should store and retrieve the value", func() {
			gomega.Expect(cacheInstance.Set(ctx, "views:customers", []byte("payload"), 0)).To(gomega.BeTrue())

			retrieved, found := cacheInstance.Get(ctx, "views:customers")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(retrieved).To(gomega.Equal([]byte("payload")))
		})

		ginkgo.It("should expire the value after its TTL", func() {
			cacheInstance.Set(ctx, "short", "value", 50*time.Millisecond)

			gomega.Eventually(func() bool {
				_, found := cacheInstance.Get(ctx, "short")
				return found
			}, 3*time.Second, 50*time.Millisecond).Should(gomega.BeFalse())
		})
	})

	ginkgo.Context("Delete", func() {
		ginkgo.It("should remove the value", func() {
			cacheInstance.Set(ctx, "gone", "value", 0)
			cacheInstance.Delete(ctx, "gone")

			_, found := cacheInstance.Get(ctx, "gone")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("should load once and serve the cached value afterwards", func() {
			var loads int32
			loader := func() (any, error) {
				atomic.AddInt32(&loads, 1)
				return "loaded", nil
			}

			first, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(first).To(gomega.Equal("loaded"))
			gomega.Expect(second).To(gomega.Equal("loaded"))
			gomega.Expect(atomic.LoadInt32(&loads)).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("should not cache loader errors", func() {
			boom := errors.New("boom")
			_, err := cacheInstance.GetOrSet(ctx, "failing", time.Minute, func() (any, error) { return nil, boom })
			gomega.Expect(err).To(gomega.MatchError(boom))

			_, found := cacheInstance.Get(ctx, "failing")
			gomega.Expect(found).To(gomega.BeFalse())
		})

		ginkgo.It("should return the context error when cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, err := cacheInstance.GetOrSet(cancelled, "cancelled", time.Minute, func() (any, error) { return "value", nil })
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
		})

		ginkgo.It("should be safe for concurrent callers", func() {
			var wg sync.WaitGroup
			for range 20 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer ginkgo.GinkgoRecover()
					value, err := cacheInstance.GetOrSet(ctx, "shared", time.Minute, func() (any, error) {
						time.Sleep(10 * time.Millisecond)
						return 42, nil
					})
					gomega.Expect(err).NotTo(gomega.HaveOccurred())
					gomega.Expect(value).To(gomega.Equal(42))
				}()
			}
			wg.Wait()
		})
	})

	ginkgo.Context("Keys", func() {
		ginkgo.It("should return an empty list", func() {
			keys, err := cacheInstance.Keys(ctx, "*")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(keys).To(gomega.BeEmpty())
		})
	})
})
