package memory

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	// Pre-populate cache
	for i := 0; i < 1000; i++ {
		key := fmt.Sprintf("getBible-kjv-John 3:%d", i)
		value := []byte(fmt.Sprintf(`{"data":{"kjv_43_3":{"verse":%d}},"timestamp":0}`, i))
		cache.Set(ctx, key, value, 1*time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("getBible-kjv-John 3:%d", i%1000)
		_, _ = cache.Get(ctx, key)
	}
}

func BenchmarkMemoryCache_Set(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("getBible-kjv-John 3:%d", i)
		value := []byte(fmt.Sprintf(`{"data":{"kjv_43_3":{"verse":%d}},"timestamp":0}`, i))
		_ = cache.Set(ctx, key, value, 1*time.Hour)
	}
}

func BenchmarkMemoryCache_Delete(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	// Pre-populate cache
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("getBible-kjv-John 3:%d", i)
		value := []byte(fmt.Sprintf(`{"data":{"kjv_43_3":{"verse":%d}},"timestamp":0}`, i))
		cache.Set(ctx, key, value, 1*time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := fmt.Sprintf("getBible-kjv-John 3:%d", i)
		_ = cache.Delete(ctx, key)
	}
}

func BenchmarkMemoryCache_ConcurrentGet(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	// Pre-populate cache
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("getBible-kjv-John 3:%d", i)
		value := []byte(fmt.Sprintf(`{"data":{"kjv_43_3":{"verse":%d}},"timestamp":0}`, i))
		cache.Set(ctx, key, value, 1*time.Hour)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("getBible-kjv-John 3:%d", i%100)
			_, _ = cache.Get(ctx, key)
			i++
		}
	})
}

func BenchmarkMemoryCache_ConcurrentSet(b *testing.B) {
	cache := NewMemoryCache()
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			key := fmt.Sprintf("getBible-kjv-John 3:%d", i)
			value := []byte(fmt.Sprintf(`{"data":{"kjv_43_3":{"verse":%d}},"timestamp":0}`, i))
			_ = cache.Set(ctx, key, value, 1*time.Hour)
			i++
		}
	})
}
