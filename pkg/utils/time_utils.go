package utils

import "time"

// NowUnixSeconds is the clock used for created_at/updated_at columns.
var NowUnixSeconds = func() int64 { return time.Now().Unix() }
