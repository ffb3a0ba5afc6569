package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "DIVESHOP_CONFIG_FILE"

type topics struct {
	ClientEvents string `mapstructure:"client_events"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
}

type redis struct {
	Addr    string        `mapstructure:"addr"`
	CartTTL time.Duration `mapstructure:"cart_ttl"`
}

type Config struct {
	LogLevel           slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr     string        `mapstructure:"http_server_addr"`
	HTTPHandlerTimeout time.Duration `mapstructure:"http_handler_timeout"`
	SQLDB              string        `mapstructure:"sql_db"`
	Redis              redis         `mapstructure:"redis"`
	Broker             broker        `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	template := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HTTPHandlerTimeout=%q
	SQLDB=%q

	RedisConfig:
	Addr=%q
	CartTTL=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		ClientEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(template, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.HTTPHandlerTimeout,
		c.SQLDB,
		c.Redis.Addr,
		c.Redis.CartTTL,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.ClientEvents,
	)
}
