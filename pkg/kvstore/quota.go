package kvstore

// Usage is the number of bytes an origin's items occupy, counted as the sum of
// key and value lengths.
func Usage(items map[string]string) int64 {
	var total int64
	for k, v := range items {
		total += int64(len(k) + len(v))
	}
	return total
}

// CheckQuota reports ErrQuotaExceeded when replacing key with value would push
// usage over quota. quota <= 0 means unlimited.
func CheckQuota(quota, usage int64, key, value string, previous string, existed bool) error {
	if quota <= 0 {
		return nil
	}
	next := usage + int64(len(key)+len(value))
	if existed {
		next -= int64(len(key) + len(previous))
	}
	if next > quota {
		return ErrQuotaExceeded
	}
	return nil
}
