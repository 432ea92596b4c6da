package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 状态冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 摄像头相关错误码 (102xxx).
const (
	// ErrCameraNotFound - 404: 摄像头不存在.
	ErrCameraNotFound int = iota + 102000
	// ErrCameraAlreadyExist - 409: 摄像头已存在.
	ErrCameraAlreadyExist
	// ErrCameraOffline - 400: 摄像头离线.
	ErrCameraOffline
)

// 房间分配相关错误码 (103xxx).
const (
	// ErrRoomNotFound - 404: 房间不存在.
	ErrRoomNotFound int = iota + 103000
	// ErrRoomFull - 409: 房间已达摄像头容量上限.
	ErrRoomFull
	// ErrDuplicateAssignment - 409: 摄像头已分配到该房间.
	ErrDuplicateAssignment
)

// 告警相关错误码 (104xxx).
const (
	// ErrAlertNotFound - 404: 告警不存在.
	ErrAlertNotFound int = iota + 104000
	// ErrAlertValidation - 400: 告警字段缺失或无效.
	ErrAlertValidation
)

// 配置快照相关错误码 (105xxx).
const (
	// ErrConfigNotFound - 404: 配置快照不存在.
	ErrConfigNotFound int = iota + 105000
)

// 持久化相关错误码 (109xxx).
const (
	// ErrMigrationFailed - 500: 迁移失败.
	ErrMigrationFailed int = iota + 109000
	// ErrPersistenceFailed - 500: 持久化失败.
	ErrPersistenceFailed
)
