package config

import (
	"os"
	"testing"
)

func TestLoadConfigWithoutBroker(t *testing.T) {
	for _, key := range []string{"MQTT_BROKER_URL", "LOCAL_MQTT_BROKER_URL", "SERVER_MQTT_BROKER_URL"} {
		os.Unsetenv(key)
	}

	cfg := LoadConfig()
	if cfg.MQTTBrokerURL != "" {
		t.Errorf("未配置Broker时地址应为空，实际 %q", cfg.MQTTBrokerURL)
	}
}

func TestLoadConfigBrokerFromEnv(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("LOCAL_MQTT_BROKER_URL", "tcp://broker.example:1883")

	cfg := LoadConfig()
	if cfg.MQTTBrokerURL != "tcp://broker.example:1883" {
		t.Errorf("未读取环境变量中的Broker地址: %q", cfg.MQTTBrokerURL)
	}
}
