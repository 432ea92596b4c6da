package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// RandomInt32 生成一个安全的随机32位整数
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomCameraID 生成形如 CAM-004213 的摄像头编号
func RandomCameraID() string {
	n := RandomInt32() % 1000000
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("CAM-%06d", n)
}
