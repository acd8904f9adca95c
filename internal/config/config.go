package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	IsDebug  bool   `yaml:"is_debug" env-default:"false"`
	TimeZone string `yaml:"time_zone" env-default:"UTC"`
	Station  struct {
		Id              string `yaml:"id" env-default:"station-1"`
		Vendor          string `yaml:"vendor" env-default:"GraphDefined OEM"`
		Model           string `yaml:"model" env-default:"VSE-1"`
		SerialNumber    string `yaml:"serial_number" env-default:""`
		FirmwareVersion string `yaml:"firmware_version" env-default:"1.0"`
	} `yaml:"station"`
	Csms struct {
		Url            string `yaml:"url" env-default:"ws://localhost:5000/ws/station-1"`
		BasicAuthUser  string `yaml:"basic_auth_user" env-default:""`
		BasicAuthPass  string `yaml:"basic_auth_pass" env-default:""`
		RequestTimeout int    `yaml:"request_timeout" env-default:"30"`
	} `yaml:"csms"`
	Scheduler struct {
		HeartbeatSeconds   int  `yaml:"heartbeat_seconds" env-default:"30"`
		MaintenanceSeconds int  `yaml:"maintenance_seconds" env-default:"1"`
		LockTimeoutSeconds int  `yaml:"lock_timeout_seconds" env-default:"5"`
		DisableHeartbeat   bool `yaml:"disable_heartbeat" env-default:"false"`
		DisableMaintenance bool `yaml:"disable_maintenance" env-default:"false"`
	} `yaml:"scheduler"`
	Signing struct {
		HmacKey string `yaml:"hmac_key" env-default:""`
	} `yaml:"signing"`
	Evse struct {
		Count             int `yaml:"count" env-default:"2"`
		ConnectorsPerEvse int `yaml:"connectors_per_evse" env-default:"1"`
	} `yaml:"evse"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env-default:"5100"`
	} `yaml:"listen"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" env-default:"false"`
		Port    string `yaml:"port" env-default:"5101"`
	} `yaml:"metrics"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"localhost"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:""`
		Password string `yaml:"password" env-default:""`
		Database string `yaml:"database" env-default:"evstation"`
	} `yaml:"mongo"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env-default:"false"`
		ApiKey  string `yaml:"api_key" env-default:""`
		ChatId  int64  `yaml:"chat_id" env-default:"0"`
	} `yaml:"telegram"`
}

var instance *Config
var once sync.Once

func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		log.Println("reading config")
		instance = &Config{}
		if err = cleanenv.ReadConfig("config.yml", instance); err != nil {
			desc, _ := cleanenv.GetDescription(instance, nil)
			log.Println(desc)
			log.Println(err)
			instance = nil
		}
	})
	return instance, err
}
