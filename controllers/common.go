package controllers

import (
	"carewatch-http-service/internal/error/code"
	"carewatch-http-service/internal/error/response"
	"carewatch-http-service/store"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 表示API错误响应
type ErrorResponse struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"无效的请求参数"`
}

// failFromResult 将存储层的拒绝结果映射为对应的错误响应
func failFromResult(ctx *gin.Context, result store.Result) {
	var errorCode int
	switch result.Reason {
	case store.RejectCameraNotFound:
		errorCode = code.ErrCameraNotFound
	case store.RejectCameraExists:
		errorCode = code.ErrCameraAlreadyExist
	case store.RejectRoomNotFound:
		errorCode = code.ErrRoomNotFound
	case store.RejectRoomFull:
		errorCode = code.ErrRoomFull
	case store.RejectDuplicateAssignment:
		errorCode = code.ErrDuplicateAssignment
	case store.RejectConfigNotFound:
		errorCode = code.ErrConfigNotFound
	default:
		errorCode = code.ErrUnknown
	}
	response.FailWithMessage(ctx, errorCode, result.Detail, nil)
}
