package main

import (
	"log/slog"

	"github.com/joseph-ayodele/docfields/internal/common"
	"github.com/joseph-ayodele/docfields/internal/extract"
	"github.com/joseph-ayodele/docfields/internal/llm"
	"github.com/joseph-ayodele/docfields/internal/llm/openai"
	"github.com/joseph-ayodele/docfields/internal/rules"
)

// buildExtractor wires config, the optional model client, and the rule-based
// seeders. With no API key the generator stays nil and extraction degrades
// to the non-model paths.
func buildExtractor(logger *slog.Logger) (*extract.Extractor, *common.Config, error) {
	cfg := common.LoadConfig()
	if cfgPath != "" {
		if err := cfg.ApplyFile(cfgPath); err != nil {
			return nil, nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	var gen llm.Generator
	if cfg.LLM.APIKey != "" {
		gen = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set; model-based extraction disabled")
	}

	ex := extract.New(gen, extract.Config{
		DefaultModel:  cfg.LLM.Model,
		StrongModel:   cfg.LLM.StrongModel,
		InvoiceSeeder: rules.InvoiceFinder{CurrencySymbol: cfg.Extract.DefaultCurrencySymbol},
		ReceiptSeeder: rules.ReceiptFinder{},
	}, logger)

	return ex, cfg, nil
}
