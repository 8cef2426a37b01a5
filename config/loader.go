package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/input-output-hk/git-fixme/errors"
	"github.com/input-output-hk/git-fixme/fs"
)

const (
	keysKey   = "keys"
	strictKey = "strict"

	maxConfigFileSize = 1024 * 1024 // 1MB
)

// Load resolves the configuration from every enabled source.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	source := SourceDefault

	if !opts.SkipUserFile {
		path := opts.UserFile
		if path == "" {
			// SearchConfigFile fails when no directory holds the file.
			if found, err := xdg.SearchConfigFile(UserFile); err == nil {
				path = found
			}
		}
		if path != "" {
			layer, err := loadUserFile(path)
			if err != nil {
				return nil, err
			}
			if err := merge(k, layer, path, &source); err != nil {
				return nil, err
			}
		}
	}

	if opts.Repo != nil {
		layer, err := loadRepoFile(opts.Repo)
		if err != nil {
			return nil, err
		}
		if err := merge(k, layer, RepoFile, &source); err != nil {
			return nil, err
		}
	}

	if !opts.SkipEnv {
		layer := koanf.New(".")
		if err := layer.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to load environment variables")
		}
		if err := merge(k, layer, SourceEnv, &source); err != nil {
			return nil, err
		}
	}

	keys, err := parseKeys(k.Get(keysKey))
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		keys = []string{DefaultKey}
		source = SourceDefault
	}

	cfg := &Config{
		Keys:       keys,
		KeysSource: source,
		Strict:     k.Bool(strictKey),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// merge folds layer into k. A nil layer is a source that does not exist.
func merge(k, layer *koanf.Koanf, name string, source *string) error {
	if layer == nil {
		return nil
	}
	if err := k.Merge(layer); err != nil {
		return errors.Wrapf(err, errors.CodeInvalidConfig, "failed to merge %s", name)
	}
	if layer.Exists(keysKey) {
		*source = name
	}
	return nil
}

// envKey maps GIT_FIXME_KEYS to "keys". Empty values are skipped so that an
// exported but empty variable does not clear a file setting.
func envKey(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// loadUserFile loads a YAML file from the native filesystem.
// A missing file yields a nil layer.
func loadUserFile(path string) (*koanf.Koanf, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to stat config file %s", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, errors.New(errors.CodeInvalidConfig,
			fmt.Sprintf("config file %s too large: %d bytes (max %d)", path, info.Size(), maxConfigFileSize))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to read config file %s", path)
	}

	return parseYAML(path, content)
}

// loadRepoFile loads RepoFile from the working-tree root.
// A missing file yields a nil layer.
func loadRepoFile(repo fs.ReadFS) (*koanf.Koanf, error) {
	exists, err := repo.Exists(RepoFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to check %s", RepoFile)
	}
	if !exists {
		return nil, nil
	}

	content, err := repo.ReadFile(RepoFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to read %s", RepoFile)
	}
	if len(content) > maxConfigFileSize {
		return nil, errors.New(errors.CodeInvalidConfig,
			fmt.Sprintf("config file %s too large: %d bytes (max %d)", RepoFile, len(content), maxConfigFileSize))
	}

	return parseYAML(RepoFile, content)
}

func parseYAML(name string, content []byte) (*koanf.Koanf, error) {
	layer := koanf.New(".")
	if err := layer.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidConfig, "failed to parse config file %s", name)
	}
	return layer, nil
}

// parseKeys accepts a colon-separated string or a list of strings.
// Empty keys are dropped.
func parseKeys(raw interface{}) ([]string, error) {
	var parts []string

	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		parts = strings.Split(v, KeySeparator)
	case []string:
		parts = v
	case []interface{}:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New(errors.CodeInvalidConfig,
					fmt.Sprintf("keys[%d]: expected a string, got %T", i, item))
			}
			parts = append(parts, s)
		}
	default:
		return nil, errors.New(errors.CodeInvalidConfig,
			fmt.Sprintf("keys: expected a string or a list of strings, got %T", raw))
	}

	keys := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys, nil
}
