package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTooManyRequests: "请求频率过高，请稍后再试",

	// 摄像头相关错误码
	ErrCameraNotFound:     "摄像头不存在",
	ErrCameraAlreadyExist: "摄像头已存在",
	ErrCameraOffline:      "摄像头当前离线",

	// 房间分配相关错误码
	ErrRoomNotFound:        "房间不存在",
	ErrRoomFull:            "房间已达摄像头容量上限",
	ErrDuplicateAssignment: "摄像头已分配到该房间",

	// 告警相关错误码
	ErrAlertNotFound:   "告警不存在",
	ErrAlertValidation: "告警字段缺失或无效",

	// 配置快照相关错误码
	ErrConfigNotFound: "配置快照不存在",

	// 持久化相关错误码
	ErrMigrationFailed:   "迁移失败",
	ErrPersistenceFailed: "持久化失败",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTooManyRequests: StatusTooManyRequests,

	// 摄像头相关错误码
	ErrCameraNotFound:     StatusNotFound,
	ErrCameraAlreadyExist: StatusConflict,
	ErrCameraOffline:      StatusBadRequest,

	// 房间分配相关错误码
	ErrRoomNotFound:        StatusNotFound,
	ErrRoomFull:            StatusConflict,
	ErrDuplicateAssignment: StatusConflict,

	// 告警相关错误码
	ErrAlertNotFound:   StatusNotFound,
	ErrAlertValidation: StatusBadRequest,

	// 配置快照相关错误码
	ErrConfigNotFound: StatusNotFound,

	// 持久化相关错误码
	ErrMigrationFailed:   StatusInternalServerError,
	ErrPersistenceFailed: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
