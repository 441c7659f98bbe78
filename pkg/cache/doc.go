// Package cache provides a small generic LRU map.
//
// It backs lookups that are expensive to compute but have a bounded working
// set, such as user-agent classification:
//
//	classes, err := cache.New[string, string](4096)
//	if err != nil {
//		return err
//	}
//	if class, ok := classes.Get(ua); ok {
//		return class
//	}
//	classes.Add(ua, classify(ua))
//
// Stats reports hits and misses so callers can size the cache.
package cache
