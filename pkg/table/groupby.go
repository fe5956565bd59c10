package table

import (
	"fmt"
	"reflect"
)

type bucket[T any] struct {
	key   any
	items []T
}

// groupBy partitions items by key, keeping keys in first-seen order and
// items in input order within each bucket.
func groupBy[T any](items []T, by func(T) any) []bucket[T] {
	var buckets []bucket[T]
	index := make(map[any]int)
	for _, item := range items {
		key := by(item)
		mk := mapKey(key)
		if i, ok := index[mk]; ok {
			buckets[i].items = append(buckets[i].items, item)
			continue
		}
		index[mk] = len(buckets)
		buckets = append(buckets, bucket[T]{key: key, items: []T{item}})
	}
	return buckets
}

// mapKey makes k usable as a map key. Keys that cannot be hashed (slices,
// maps, or structs holding them behind interfaces) are compared by their
// printed form.
func mapKey(k any) any {
	if k == nil {
		return nil
	}
	if reflect.ValueOf(k).Comparable() {
		return k
	}
	return fmt.Sprint(k)
}

func sameKey(a, b any) bool {
	return mapKey(a) == mapKey(b)
}
