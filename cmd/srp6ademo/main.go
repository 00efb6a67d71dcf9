// Command srp6ademo is a thin, single-process demonstration driver for
// the srp package: it loads a Config, registers a verifier, and runs a
// client+server SRP-6a exchange over in-memory values, logging each
// lifecycle event with secrets redacted.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/srp6a/srp6a/internal/config"
	"github.com/srp6a/srp6a/internal/logging"
	"github.com/srp6a/srp6a/pkg/srp"
)

func main() {
	configPath := flag.String("config", "srp6ademo.yaml", "path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		logger := logging.New(logging.LevelError, logging.FormatJSON)
		logger.Error("demo run failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(parseLogLevel(cfg.Logging.Level), parseLogFormat(cfg.Logging.Format))

	for _, entry := range cfg.CustomGroups {
		if _, err := srp.NewCustomGroup(entry.NHex, entry.GHex); err != nil {
			return fmt.Errorf("failed to validate custom group %q: %w", entry.Name, err)
		}
		logger.Info("registered custom group", map[string]any{"name": entry.Name})
	}

	group, err := resolveGroup(cfg)
	if err != nil {
		return fmt.Errorf("failed to resolve group: %w", err)
	}

	hashKind, err := resolveHashKind(cfg.HashKind)
	if err != nil {
		return fmt.Errorf("failed to resolve hash kind: %w", err)
	}

	srpCfg, err := srp.NewConfig(hashKind, group, cfg.StrictPadding)
	if err != nil {
		return fmt.Errorf("failed to build srp config: %w", err)
	}

	logger.Info("srp config ready", map[string]any{
		"hash_kind":      cfg.HashKind,
		"group":          cfg.Group,
		"strict_padding": cfg.StrictPadding,
	})

	saltLen := cfg.Demo.SaltLen
	salt, verifier, err := srp.CreateVerifier(srpCfg, cfg.Demo.Identity, cfg.Demo.Password, saltLen)
	if err != nil {
		return fmt.Errorf("failed to create verifier: %w", err)
	}
	logger.Info("verifier registered", map[string]any{
		"identity": cfg.Demo.Identity,
		"salt":     salt,
	})

	client, err := srp.NewClientSession(srpCfg, cfg.Demo.Identity, cfg.Demo.Password)
	if err != nil {
		return fmt.Errorf("failed to create client session: %w", err)
	}
	defer client.Destroy()

	identity, pubA, err := client.Start()
	if err != nil {
		return fmt.Errorf("client start failed: %w", err)
	}
	logger.Info("client sent A", map[string]any{"identity": identity})

	server, pubB, err := srp.NewServerSession(srpCfg, identity, salt, verifier, pubA)
	if err != nil {
		logger.Error("server session construction failed", map[string]any{"error": err.Error()})
		return nil
	}
	defer server.Destroy()
	logger.Info("server issued challenge", map[string]any{"identity": identity})

	m1, err := client.ProcessChallenge(salt, pubB)
	if err != nil {
		logger.Error("client challenge processing failed", map[string]any{"error": err.Error()})
		return nil
	}

	ok, m2 := server.VerifyClientProof(m1)
	if !ok {
		logger.Error("server rejected client proof", nil)
		return nil
	}
	logger.Info("server verified client proof", nil)

	verified, err := client.VerifySession(m2)
	if err != nil || !verified {
		logger.Error("client rejected server proof", map[string]any{"error": fmt.Sprint(err)})
		return nil
	}

	logger.Info("mutual authentication succeeded", map[string]any{
		"client_authenticated": client.IsAuthenticated(),
		"server_authenticated": server.IsAuthenticated(),
		"session_key_len":      len(client.SessionKey()),
	})

	return nil
}

func resolveGroup(cfg *config.Config) (*srp.Group, error) {
	switch cfg.Group {
	case "n512":
		return srp.LookupGroup(srp.GroupN512)
	case "n768":
		return srp.LookupGroup(srp.GroupN768)
	case "n1024":
		return srp.LookupGroup(srp.GroupN1024)
	case "n2048":
		return srp.LookupGroup(srp.GroupN2048)
	case "n3072":
		return srp.LookupGroup(srp.GroupN3072)
	case "n4096":
		return srp.LookupGroup(srp.GroupN4096)
	case "n8192":
		return srp.LookupGroup(srp.GroupN8192)
	case "custom":
		if len(cfg.CustomGroups) == 0 {
			return nil, fmt.Errorf("group is custom but no custom_groups were configured")
		}
		first := cfg.CustomGroups[0]
		return srp.NewCustomGroup(first.NHex, first.GHex)
	default:
		return nil, fmt.Errorf("unknown group %q", cfg.Group)
	}
}

func resolveHashKind(name string) (srp.HashKind, error) {
	switch name {
	case "sha1":
		return srp.HashSHA1, nil
	case "sha256":
		return srp.HashSHA256, nil
	case "sha512":
		return srp.HashSHA512, nil
	default:
		return 0, fmt.Errorf("unknown hash_kind %q", name)
	}
}

func parseLogLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseLogFormat(format string) logging.LogFormat {
	if format == "human" {
		return logging.FormatHuman
	}
	return logging.FormatJSON
}
