package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSetupLoggerWritesDatedFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if err := SetupLogger(); err != nil {
		t.Fatalf("初始化日志失败: %v", err)
	}

	Info("级别日志写入测试")
	log.Printf("[store] 组件日志写入测试")

	logFileName := filepath.Join(logDir,
		fmt.Sprintf("%s-%s.log", logFilePrefix, time.Now().Format("2006-01-02")))
	data, err := os.ReadFile(logFileName)
	if err != nil {
		t.Fatalf("日志文件未创建: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "级别日志写入测试") {
		t.Error("级别日志未写入文件")
	}
	if !strings.Contains(content, "[store] 组件日志写入测试") {
		t.Error("组件日志未写入同一文件")
	}
}
