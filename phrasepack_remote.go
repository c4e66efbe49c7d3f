package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"
)

// PhrasePackFetcher downloads phrase packs from a remote pack index
// into the local phrases directory, where the normal loader picks them
// up at the next startup.
type PhrasePackFetcher struct {
	client  *resty.Client
	baseURL string
	destDir string
}

// NewPhrasePackFetcher creates a fetcher targeting destDir.
func NewPhrasePackFetcher(baseURL, destDir string) *PhrasePackFetcher {
	client := resty.New()
	client.SetTimeout(10 * time.Second)
	client.SetRetryCount(2)

	return &PhrasePackFetcher{
		client:  client,
		baseURL: baseURL,
		destDir: destDir,
	}
}

// Fetch downloads the named pack ("<base>/<name>.yaml"), validates that
// it parses as a phrase pack, and writes it into the phrases directory.
func (f *PhrasePackFetcher) Fetch(name string) (string, error) {
	if f.baseURL == "" {
		return "", fmt.Errorf("no phrase pack base URL configured")
	}

	url := fmt.Sprintf("%s/%s.yaml", f.baseURL, name)
	resp, err := f.client.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to download phrase pack %s: %v", name, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("phrase pack %s not available: HTTP %d", name, resp.StatusCode())
	}

	// Reject downloads that are not valid packs before writing anything.
	var pack PhrasePack
	if err := yaml.Unmarshal(resp.Body(), &pack); err != nil {
		return "", fmt.Errorf("downloaded pack %s is not valid YAML: %v", name, err)
	}
	if len(pack.Phrases) == 0 {
		return "", fmt.Errorf("downloaded pack %s contains no phrases", name)
	}

	if err := os.MkdirAll(f.destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create phrases directory: %v", err)
	}
	dest := filepath.Join(f.destDir, name+".yaml")
	if err := os.WriteFile(dest, resp.Body(), 0644); err != nil {
		return "", fmt.Errorf("failed to save phrase pack: %v", err)
	}
	return dest, nil
}
