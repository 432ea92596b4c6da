package models

import "time"

// CurrentTime 返回当前时间的RFC3339字符串
func CurrentTime() string {
	return time.Now().Format(time.RFC3339)
}
