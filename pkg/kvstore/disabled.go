package kvstore

import "context"

// Disabled is a Storage that refuses every operation, like a browser with site
// storage turned off.
type Disabled struct{}

func (Disabled) GetItem(context.Context, string) (string, bool, error) { return "", false, ErrDisabled }
func (Disabled) SetItem(context.Context, string, string) error         { return ErrDisabled }
