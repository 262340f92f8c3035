package kvstore

import "errors"

var (
	ErrQuotaExceeded = errors.New("kvstore: quota exceeded")
	ErrDisabled      = errors.New("kvstore: storage is disabled")
)
