package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// 日志目录与按天滚动的文件名前缀
const (
	logDir        = "logs"
	logFilePrefix = "carewatch"
)

var (
	InfoLogger    *log.Logger
	WarningLogger *log.Logger
	ErrorLogger   *log.Logger
)

// SetupLogger 初始化日志配置：日志同时写入控制台和当天的日志文件。
// 标准库默认logger也重定向到同一输出，[store]、[MQTT]等组件日志
// 与级别日志落在同一个文件里
func SetupLogger() error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %v", err)
	}

	logFileName := filepath.Join(logDir,
		fmt.Sprintf("%s-%s.log", logFilePrefix, time.Now().Format("2006-01-02")))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %v", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, logFile)

	InfoLogger = newLeveledLogger(multiWriter, "INFO")
	WarningLogger = newLeveledLogger(multiWriter, "WARNING")
	ErrorLogger = newLeveledLogger(multiWriter, "ERROR")

	// 组件日志（log.Printf）共用同一输出
	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime)

	return nil
}

func newLeveledLogger(w io.Writer, level string) *log.Logger {
	return log.New(w, level+": ", log.Ldate|log.Ltime|log.Lshortfile)
}

// Info 记录信息级别的日志
func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// Warning 记录警告级别的日志
func Warning(format string, v ...interface{}) {
	WarningLogger.Printf(format, v...)
}

// Error 记录错误级别的日志
func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}
