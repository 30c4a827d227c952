package cli

import (
	"fmt"
	"log"

	"safelink-lite/company"
	"safelink-lite/config"
	"safelink-lite/urlcheck"
)

// engine is everything a subcommand needs, built once from config.
type engine struct {
	cfg      config.Config
	scorer   *urlcheck.Scorer
	verifier *company.Verifier
}

type engineLoader func() (*engine, error)

func loadEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return newEngine(cfg)
}

func newEngine(cfg config.Config) (*engine, error) {
	kf, err := config.LoadKnowledgeFile(cfg.KnowledgeFile)
	if err != nil {
		return nil, fmt.Errorf("loading knowledge file: %w", err)
	}

	kb := kf.KnowledgeBase()
	log.Printf("[Config] knowledge base: %d companies", kb.Len())

	scorer := urlcheck.New(
		urlcheck.WithKeywords(kf.SuspiciousKeywords),
		urlcheck.WithShorteners(kf.Shorteners),
		urlcheck.WithOwnDomains(kb.Domains()),
	)

	timeout := company.ClampTimeout(cfg.Timeout)
	opts := []company.Option{
		company.WithUserAgent(cfg.UserAgent),
		company.WithTimeout(timeout),
		company.WithAPIKey(cfg.ClearbitAPIKey),
		company.WithKnowledgeBase(kb),
	}
	if cfg.ClearbitAPIKey == "" {
		log.Printf("[Config] CLEARBIT_API_KEY not set, third-party lookup disabled")
	}
	if cfg.EnableWhois {
		opts = append(opts, company.WithWhois(company.NewWhoisLookup(timeout)))
	}
	if !cfg.SkipChromedp {
		opts = append(opts, company.WithRenderer(newRenderer(cfg)))
	}

	return &engine{
		cfg:      cfg,
		scorer:   scorer,
		verifier: company.New(opts...),
	}, nil
}

func newRenderer(cfg config.Config) company.ChromeRenderer {
	return company.ChromeRenderer{
		ExecPath:  cfg.ChromePath,
		UserAgent: cfg.UserAgent,
		Timeout:   company.ClampTimeout(cfg.Timeout),
	}
}
