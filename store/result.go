package store

import "fmt"

// RejectReason 操作被拒绝的原因
type RejectReason string

const (
	RejectCameraNotFound      RejectReason = "camera_not_found"      // 摄像头不存在
	RejectCameraExists        RejectReason = "camera_already_exists" // 摄像头ID已存在
	RejectRoomNotFound        RejectReason = "room_not_found"        // 房间不存在
	RejectRoomFull            RejectReason = "room_full"             // 房间已达容量上限
	RejectDuplicateAssignment RejectReason = "duplicate_assignment"  // 摄像头已分配到该房间
	RejectConfigNotFound      RejectReason = "configuration_not_found" // 配置快照不存在
)

// Result 每个变更操作返回的判别结果
// 违反不变量的操作不会抛出异常，而是返回被拒绝的原因，状态保持不变；
// 由调用方（REST层）决定是否向外暴露拒绝原因
type Result struct {
	OK     bool         `json:"ok"`
	Reason RejectReason `json:"reason,omitempty"`
	Detail string       `json:"detail,omitempty"`
}

func ok() Result {
	return Result{OK: true}
}

func rejected(reason RejectReason, format string, v ...interface{}) Result {
	return Result{
		OK:     false,
		Reason: reason,
		Detail: fmt.Sprintf(format, v...),
	}
}

// Message 返回适合日志和响应的描述
func (r Result) Message() string {
	if r.OK {
		return "成功"
	}
	return fmt.Sprintf("%s: %s", r.Reason, r.Detail)
}
