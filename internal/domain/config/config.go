package config

import (
	"net/url"
	"os"
	"strings"

	domainerr "awogen/internal/domain/errors"
	"awogen/internal/domain/site"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Site      SiteConfig      `yaml:"site"`
	Build     BuildConfig     `yaml:"build"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

type SiteConfig struct {
	Name      string   `yaml:"name"`
	SiteURL   string   `yaml:"site_url"`
	Year      string   `yaml:"year"`
	Published string   `yaml:"published"`
	Languages []string `yaml:"languages"`
}

type BuildConfig struct {
	DataDir   string   `yaml:"data_dir"`
	PublicDir string   `yaml:"public_dir"`
	ThemeDir  string   `yaml:"theme_dir"`
	Series    []string `yaml:"series"`
}

type AnalyticsConfig struct {
	GTMContainer     string `yaml:"gtm_container"`
	SiteVerification string `yaml:"site_verification"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Name:      "AnimeWatchOrder.com",
			SiteURL:   "https://animewatchorder.com",
			Year:      "2026",
			Published: "2026-02-12",
			Languages: []string{site.LangEN, site.LangFR},
		},
		Build: BuildConfig{
			DataDir:   "data",
			PublicDir: "public",
			Series:    []string{"dragon-ball", "naruto"},
		},
		Analytics: AnalyticsConfig{
			GTMContainer:     "GTM-TJ84SLJX",
			SiteVerification: "NC4herujRe5TMX77VnhqjvWdJa6XAwBd5iAVIGxwXbk",
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Name) == "" {
		ve.Add("site.name", "must not be empty")
	}

	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	}

	if len(c.Site.Languages) == 0 {
		ve.Add("site.languages", "must not be empty")
	}
	hasDefault := false
	for _, lang := range c.Site.Languages {
		if strings.TrimSpace(lang) == "" {
			ve.Add("site.languages", "must not contain empty entries")
			continue
		}
		if lang == site.DefaultLang {
			hasDefault = true
		}
	}
	if len(c.Site.Languages) > 0 && !hasDefault {
		ve.Add("site.languages", "must include the default language '"+site.DefaultLang+"'")
	}

	if strings.TrimSpace(c.Build.DataDir) == "" {
		ve.Add("build.data_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}
	if len(c.Build.Series) == 0 {
		ve.Add("build.series", "must list at least one series slug")
	}
	for _, slug := range c.Build.Series {
		if strings.TrimSpace(slug) == "" {
			ve.Add("build.series", "must not contain empty slugs")
		}
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// 直接 Unmarshal 到 cfg 上：文件里写到的字段覆盖默认值，其余保留 Default
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadOrDefault(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.Validate(); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
