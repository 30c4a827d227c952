package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"safelink-lite/company"
)

// KnowledgeFile overrides the built-in reference data. Any section left out
// keeps its default.
//
//	companies:
//	  - key: initech
//	    company_name: Initech LLC
//	    domain: initech.com
//	suspicious_keywords: [login, verify]
//	shorteners: [bit.ly]
type KnowledgeFile struct {
	Companies          []company.KnownCompany `yaml:"companies"`
	SuspiciousKeywords []string               `yaml:"suspicious_keywords"`
	Shorteners         []string               `yaml:"shorteners"`
}

// LoadKnowledgeFile reads path. An empty path returns an empty KnowledgeFile.
func LoadKnowledgeFile(path string) (KnowledgeFile, error) {
	if path == "" {
		return KnowledgeFile{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return KnowledgeFile{}, err
	}

	var kf KnowledgeFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return KnowledgeFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := kf.Validate(); err != nil {
		return KnowledgeFile{}, fmt.Errorf("invalid %s: %w", path, err)
	}
	return kf, nil
}

func (kf KnowledgeFile) Validate() error {
	var errs []error
	for i, c := range kf.Companies {
		if c.Key == "" {
			errs = append(errs, fmt.Errorf("companies[%d]: key is required", i))
		}
		if c.CompanyName == "" {
			errs = append(errs, fmt.Errorf("companies[%d]: company_name is required", i))
		}
	}
	return errors.Join(errs...)
}

// KnowledgeBase returns the file's companies, or the built-in set when the
// file lists none.
func (kf KnowledgeFile) KnowledgeBase() *company.KnowledgeBase {
	if len(kf.Companies) == 0 {
		return company.NewKnowledgeBase(company.DefaultKnownCompanies)
	}
	return company.NewKnowledgeBase(kf.Companies)
}
