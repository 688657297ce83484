package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/in/cli"
	flatfile_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/flatfile"
	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/mysql"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/mysql"
)

// StorageConfig 儲存層設定
type StorageConfig struct {
	// Backend: "file" | "memory" | "mysql"
	Backend  string `yaml:"backend"`
	DataFile string `yaml:"data_file"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	MySQL   mysql.Config  `yaml:"mysql"`
}

func main() {
	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化儲存層 (Driven Adapter)
	store, cleanup, err := newRegistry(cfg)
	if err != nil {
		log.Fatalf("Failed to init storage: %v", err)
	}
	defer cleanup()

	// 3. 初始化核心，啟動時載入所有帳戶
	manager, err := usecase.NewBankManager(store)
	if err != nil {
		log.Fatalf("Failed to load accounts: %v", err)
	}
	log.Printf("Storage backend: %s", cfg.Storage.Backend)

	// 4. 啟動行模式前端 (Driving Adapter)
	shell := cli.NewShell(manager, os.Stdin, os.Stdout)
	if err := shell.Run(); err != nil {
		log.Fatalf("Shell exited with error: %v", err)
	}
}

// newRegistry 依設定選擇儲存層後端
func newRegistry(cfg Config) (usecase.Registry, func(), error) {
	switch cfg.Storage.Backend {
	case "file":
		return flatfile_adapter.NewStore(cfg.Storage.DataFile), func() {}, nil
	case "memory":
		return memory_adapter.NewStore(), func() {}, nil
	case "mysql":
		client, err := mysql.NewClient(cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		reg, err := mysql_adapter.NewMySQLRegistry(client)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return reg, func() { client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid storage backend: %q", cfg.Storage.Backend)
	}
}

func loadConfig() Config {
	path := os.Getenv("BANK_CONFIG")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	cfgData, err := os.ReadFile(path)
	if err != nil {
		// 沒有設定檔時直接用預設值跑單機檔案模式
		log.Printf("Config file not found (%v), using defaults", err)
	} else if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "file"
	}
	if cfg.Storage.DataFile == "" {
		cfg.Storage.DataFile = "bank_data.txt"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 100
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 10
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 30 * time.Minute
	}
	return cfg
}
