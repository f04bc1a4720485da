package config

import "time"

type TDLibConfig struct {
	UseTestDc           bool       `yaml:"use_test_dc"`
	DatabaseDirectory   string     `yaml:"database_directory"`
	FilesDirectory      string     `yaml:"files_directory"`
	UseFileDatabase     bool       `yaml:"use_file_database"`
	UseChatInfoDatabase bool       `yaml:"use_chat_info_database"`
	UseMessageDatabase  bool       `yaml:"use_message_database"`
	UseSecretChats      bool       `yaml:"use_secret_chats"`
	APIID               int32      `yaml:"api_id"`
	APIHash             string     `yaml:"api_hash"`
	SystemLanguageCode  string     `yaml:"system_language_code"`
	DeviceModel         string     `yaml:"device_model"`
	SystemVersion       string     `yaml:"system_version"`
	ApplicationVersion  string     `yaml:"application_version"`
	LogLevel            int        `yaml:"log_level"`
	Channels            []string   `yaml:"channels"`
	GetHistory          GetHistory `yaml:"gethistory"`
	FetchWorkers        int        `yaml:"fetch_workers"`
}

type GetHistory struct {
	Limit     int32 `yaml:"limit"`
	OnlyLocal bool  `yaml:"only_local"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	FilePath   string `yaml:"file_path"`
	Production bool   `yaml:"production"`
}

type KeywordsConfig struct {
	DictionaryPath string `yaml:"dictionary_path"`
	CacheSize      int    `yaml:"cache_size"`
}

type TaggerConfig struct {
	Workers int `yaml:"workers"`
}

type ReporterConfig struct {
	OutputDir string `yaml:"output_dir"`
	TopLimit  int    `yaml:"top_limit"`
}

type APIConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	CORSOrigins  []string      `yaml:"cors_origins"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}
