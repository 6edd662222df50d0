package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/gearscan/internal/engine/opts"
)

// setter stores one decoded value into a config layer.
type setter[C any] func(dst *C, key string, value any) error

func stringSetter[C any](field func(*C) **string) setter[C] {
	return func(dst *C, key string, value any) error {
		s, err := expectString(value, key)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		*field(dst) = &s
		return nil
	}
}

func fieldListSetter[C any](field func(*C) **string) setter[C] {
	return func(dst *C, key string, value any) error {
		s, err := expectFieldList(value, key)
		if err != nil {
			return err
		}
		*field(dst) = &s
		return nil
	}
}

func intSetter[C any](field func(*C) **int) setter[C] {
	return func(dst *C, key string, value any) error {
		n, err := expectInt(value, key)
		if err != nil {
			return err
		}
		*field(dst) = &n
		return nil
	}
}

func boolSetter[C any](field func(*C) **bool) setter[C] {
	return func(dst *C, key string, value any) error {
		b, err := expectBool(value, key)
		if err != nil {
			return err
		}
		*field(dst) = &b
		return nil
	}
}

func listSetter[C any](field func(*C) **[]string) setter[C] {
	return func(dst *C, key string, value any) error {
		list, err := expectStringList(value, key)
		if err != nil {
			return err
		}
		*field(dst) = &list
		return nil
	}
}

var engineFields = map[string]setter[EngineConfig]{
	"query":          stringSetter(func(c *EngineConfig) **string { return &c.Query }),
	"gear":           stringSetter(func(c *EngineConfig) **string { return &c.Gear }),
	"arity":          intSetter(func(c *EngineConfig) **int { return &c.Arity }),
	"path":           listSetter(func(c *EngineConfig) **[]string { return &c.Paths }),
	"with_parts":     boolSetter(func(c *EngineConfig) **bool { return &c.WithParts }),
	"jobs":           intSetter(func(c *EngineConfig) **int { return &c.Jobs }),
	"max_file_bytes": intSetter(func(c *EngineConfig) **int { return &c.MaxFileBytes }),
	"output":         stringSetter(func(c *EngineConfig) **string { return &c.Output }),
	"color":          stringSetter(func(c *EngineConfig) **string { return &c.Color }),
	"verbose":        boolSetter(func(c *EngineConfig) **bool { return &c.Verbose }),
}

var uiFields = map[string]setter[UIConfig]{
	"fields":   fieldListSetter(func(c *UIConfig) **string { return &c.Fields }),
	"sort":     stringSetter(func(c *UIConfig) **string { return &c.Sort }),
	"progress": boolSetter(func(c *UIConfig) **bool { return &c.Progress }),
}

var keyAliases = map[string]string{
	"mode":       "query",
	"gear_glyph": "gear",
	"glyph":      "gear",
	"gear_arity": "arity",
	"paths":      "path",
	"parts":      "with_parts",
	"max_bytes":  "max_file_bytes",
}

// lookup resolves key (already normalised) through the aliases.
func lookup[C any](fields map[string]setter[C], key string) (string, setter[C], bool) {
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	set, ok := fields[key]
	return key, set, ok
}

// Load は拡張子 (.yaml/.yml/.toml/.json) に応じて設定ファイルを読み込みます。
// 空のパスはゼロ値の Config を返します。
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	raw, err := decodeRaw(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeRaw(data []byte, ext string) (map[string]any, error) {
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".json":
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return raw, nil
}

// decodeConfigMap accepts engine/ui sections as well as their keys at the
// top level.
func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "engine":
			if err := decodeSection(&cfg.Engine, value, engineFields); err != nil {
				return cfg, fmt.Errorf("engine: %w", err)
			}
			continue
		case "ui":
			if err := decodeSection(&cfg.UI, value, uiFields); err != nil {
				return cfg, fmt.Errorf("ui: %w", err)
			}
			continue
		}
		if name, set, ok := lookup(engineFields, norm); ok {
			if err := set(&cfg.Engine, name, value); err != nil {
				return cfg, fmt.Errorf("engine: %w", err)
			}
			continue
		}
		if name, set, ok := lookup(uiFields, norm); ok {
			if err := set(&cfg.UI, name, value); err != nil {
				return cfg, fmt.Errorf("ui: %w", err)
			}
			continue
		}
		return cfg, fmt.Errorf("unknown config key: %s", key)
	}
	return cfg, nil
}

func decodeSection[C any](dst *C, value any, fields map[string]setter[C]) error {
	section, err := toStringKeyMap(value)
	if err != nil {
		return err
	}
	for key, v := range section {
		name, set, ok := lookup(fields, normalizeKey(key))
		if !ok {
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := set(dst, name, v); err != nil {
			return err
		}
	}
	return nil
}

// expectFieldList accepts "a,b" as well as a YAML/TOML list of field names.
func expectFieldList(value any, field string) (string, error) {
	if _, ok := value.(string); ok {
		return expectString(value, field)
	}
	list, err := expectStringList(value, field)
	if err != nil {
		return "", err
	}
	return strings.Join(list, ","), nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if trimmed == "" || err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return normalizeList(engineopts.SplitMulti([]string{v})), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}
