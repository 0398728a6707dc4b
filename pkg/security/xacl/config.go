package xacl

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置数据格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// Config 是 ACL 的声明式配置。
//
//	policy: denylist
//	ranges:
//	  - 10.0.0.0/8
//	  - "192.168"
//	  - 8.12.144.0 - 8.12.144.255
type Config struct {
	// Policy 访问策略名称，见 [ParsePolicy]。空值为 allowlist。
	Policy string `koanf:"policy" json:"policy" yaml:"policy"`

	// Ranges 范围列表，写法见 [xnet.ParseRange]。
	Ranges []string `koanf:"ranges" json:"ranges" yaml:"ranges"`
}

// LoadConfig 从字节数据解析配置，需要显式指定格式。
// 空数据返回零值 Config。数据本身不合法时返回包装 [ErrConfig] 的错误；
// 范围内容在 [NewFromConfig] 中校验。
//
// 解码不做弱类型转换：YAML 中未加引号的 10.10 是浮点数，
// 转成字符串会变成 "10.1"，因此非字符串的范围项直接报错。
func LoadConfig(data []byte, format Format) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("%w: unsupported format %q", ErrConfig, format)
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}

	var cfg Config
	conf := koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{WeaklyTypedInput: false},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return cfg, nil
}

// NewFromConfig 按配置创建 ACL。cfg.Policy 覆盖 opts 中的 [WithPolicy]。
func NewFromConfig(cfg Config, opts ...Option) (*ACL, error) {
	policy, err := ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	return New(cfg.Ranges, append(opts[:len(opts):len(opts)], WithPolicy(policy))...)
}
