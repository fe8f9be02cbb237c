// Command contest-deploy deploys the contest system contracts to a Neo
// blockchain network and wires them together.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/openprize/contest-contract/deploy"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type contractFiles struct {
	NEF      string `yaml:"nef"`
	Manifest string `yaml:"manifest"`
}

type config struct {
	RPCEndpoint string `yaml:"rpc_endpoint"`

	Wallet struct {
		Path     string `yaml:"path"`
		Password string `yaml:"password"`
	} `yaml:"wallet"`

	// Escrow reclamation delay after the contest deadline, in milliseconds.
	// Zero keeps the contract default.
	GracePeriod int64 `yaml:"grace_period"`

	DisableSubmissionWindow bool `yaml:"disable_submission_window"`

	Contracts struct {
		Balance contractFiles `yaml:"balance"`
		Contest contractFiles `yaml:"contest"`
	} `yaml:"contracts"`
}

func main() {
	configPath := flag.String("config", "config.yml", "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "contest-deploy: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := readConfig(configPath)
	if err != nil {
		return fmt.Errorf("read config %s: %w", configPath, err)
	}

	l, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	acc, err := unlockWalletAccount(cfg.Wallet.Path, cfg.Wallet.Password)
	if err != nil {
		return fmt.Errorf("unlock wallet account: %w", err)
	}

	balanceContract, err := readContract(cfg.Contracts.Balance)
	if err != nil {
		return fmt.Errorf("read Balance contract: %w", err)
	}

	contestContract, err := readContract(cfg.Contracts.Contest)
	if err != nil {
		return fmt.Errorf("read Contest contract: %w", err)
	}

	ctx := context.Background()

	c, err := rpcclient.New(ctx, cfg.RPCEndpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("create RPC client for %s: %w", cfg.RPCEndpoint, err)
	}
	defer c.Close()

	if err := c.Init(); err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	return deploy.Deploy(ctx, deploy.Prm{
		Logger:                  l,
		Blockchain:              c,
		LocalAccount:            acc,
		BalanceContract:         balanceContract,
		ContestContract:         contestContract,
		GracePeriod:             cfg.GracePeriod,
		DisableSubmissionWindow: cfg.DisableSubmissionWindow,
	})
}

func readConfig(path string) (config, error) {
	var cfg config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	return cfg, err
}

func unlockWalletAccount(path, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	if len(w.Accounts) == 0 {
		return nil, fmt.Errorf("wallet %s has no accounts", path)
	}

	acc := w.Accounts[0]
	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

func readContract(files contractFiles) (deploy.ContractPrm, error) {
	var prm deploy.ContractPrm

	nefData, err := os.ReadFile(files.NEF)
	if err != nil {
		return prm, fmt.Errorf("read NEF: %w", err)
	}

	nefFile, err := nef.FileFromBytes(nefData)
	if err != nil {
		return prm, fmt.Errorf("parse NEF: %w", err)
	}

	manifestData, err := os.ReadFile(files.Manifest)
	if err != nil {
		return prm, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest.Manifest
	if err := json.Unmarshal(manifestData, &m); err != nil {
		return prm, fmt.Errorf("parse manifest: %w", err)
	}

	prm.NEF = nefFile
	prm.Manifest = m

	return prm, nil
}
