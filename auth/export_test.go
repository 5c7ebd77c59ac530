package auth

import "time"

func (rp *ReturnPaths) SetNow(fn func() time.Time) { rp.now = fn }
