package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are accepted both as strings ("1h") and as integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		SessionTokenTTL     Duration `json:"session_token_ttl"`
		ResetTokenTTL       Duration `json:"reset_token_ttl"`
		EnforceTokenPurpose bool     `json:"enforce_token_purpose"`
		ResetLinkBaseURL    string   `json:"reset_link_base_url"`
		PasswordHashCost    int      `json:"password_hash_cost"`
		LogLevel            string   `json:"log_level"`
		Version             string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Mail struct {
		Transport      string   `json:"transport"`
		From           string   `json:"from"`
		Host           string   `json:"smtp_host"`
		Port           int      `json:"smtp_port"`
		Secure         bool     `json:"smtp_secure"`
		Username       string   `json:"smtp_username"`
		Password       string   `json:"smtp_password"`
		RelayURL       string   `json:"relay_url"`
		RelayToken     string   `json:"relay_token"`
		BrokerURL      string   `json:"broker_url"`
		Queue          string   `json:"queue"`
		Timeout        Duration `json:"timeout"`
		MaxRetries     uint64   `json:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
	} `json:"mail,omitempty"`

	Limiter struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		MaxFailures   int64    `json:"max_failures"`
		Window        Duration `json:"window"`
	} `json:"limiter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			SessionTokenTTL:     time.Duration(jsonCfg.App.SessionTokenTTL),
			ResetTokenTTL:       time.Duration(jsonCfg.App.ResetTokenTTL),
			EnforceTokenPurpose: jsonCfg.App.EnforceTokenPurpose,
			ResetLinkBaseURL:    jsonCfg.App.ResetLinkBaseURL,
			PasswordHashCost:    jsonCfg.App.PasswordHashCost,
			LogLevel:            jsonCfg.App.LogLevel,
			Version:             jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
				MaxIdleConns: jsonCfg.Storage.DB.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Mail: Mail{
			Transport:      jsonCfg.Mail.Transport,
			From:           jsonCfg.Mail.From,
			Host:           jsonCfg.Mail.Host,
			Port:           jsonCfg.Mail.Port,
			Secure:         jsonCfg.Mail.Secure,
			Username:       jsonCfg.Mail.Username,
			Password:       jsonCfg.Mail.Password,
			RelayURL:       jsonCfg.Mail.RelayURL,
			RelayToken:     jsonCfg.Mail.RelayToken,
			BrokerURL:      jsonCfg.Mail.BrokerURL,
			Queue:          jsonCfg.Mail.Queue,
			Timeout:        time.Duration(jsonCfg.Mail.Timeout),
			MaxRetries:     jsonCfg.Mail.MaxRetries,
			RetryBaseDelay: time.Duration(jsonCfg.Mail.RetryBaseDelay),
		},
		Limiter: Limiter{
			RedisAddress:  jsonCfg.Limiter.RedisAddress,
			RedisPassword: jsonCfg.Limiter.RedisPassword,
			RedisDB:       jsonCfg.Limiter.RedisDB,
			MaxFailures:   jsonCfg.Limiter.MaxFailures,
			Window:        time.Duration(jsonCfg.Limiter.Window),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
