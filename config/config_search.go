package config

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/adrianliechti/mysearch/pkg/otel"
	"github.com/adrianliechti/mysearch/pkg/searcher"
	"github.com/adrianliechti/mysearch/pkg/searcher/github"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func (cfg *Config) RegisterSearcher(p searcher.Provider) {
	cfg.searcher = p
}

func (cfg *Config) Searcher() (searcher.Provider, error) {
	if cfg.searcher != nil {
		return cfg.searcher, nil
	}

	return nil, errors.New("searcher not found")
}

type searcherConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`

	Proxy *proxyConfig `yaml:"proxy"`
}

type searcherContext struct {
	Client *http.Client
}

func (cfg *Config) registerSearcher(f *configFile) error {
	config := searcherConfig{
		Type:  "github",
		Token: os.Getenv("GITHUB_TOKEN"),
	}

	if f.Searcher != nil {
		config = *f.Searcher
	}

	transport := http.DefaultTransport

	if config.Proxy != nil {
		t, err := config.Proxy.proxyTransport()

		if err != nil {
			return err
		}

		if t != nil {
			transport = t
		}
	}

	context := searcherContext{
		Client: &http.Client{
			Transport: otelhttp.NewTransport(transport),
		},
	}

	p, err := createSearcher(config, context)

	if err != nil {
		return err
	}

	if _, ok := p.(otel.Searcher); !ok {
		p = otel.NewSearcher(config.Type, p)
	}

	cfg.RegisterSearcher(p)

	return nil
}

func createSearcher(cfg searcherConfig, context searcherContext) (searcher.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "github":
		return githubSearcher(cfg, context)

	default:
		return nil, errors.New("invalid search type: " + cfg.Type)
	}
}

func githubSearcher(cfg searcherConfig, context searcherContext) (searcher.Provider, error) {
	var options []github.Option

	if context.Client != nil {
		options = append(options, github.WithClient(context.Client))
	}

	if cfg.URL != "" {
		options = append(options, github.WithURL(cfg.URL))
	}

	if cfg.Token != "" {
		options = append(options, github.WithToken(cfg.Token))
	}

	if cfg.UserAgent != "" {
		options = append(options, github.WithUserAgent(cfg.UserAgent))
	}

	if cfg.Timeout > 0 {
		options = append(options, github.WithTimeout(cfg.Timeout))
	}

	return github.New(options...)
}
