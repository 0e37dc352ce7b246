// Package report は解析結果の整形を行います
package report

import (
	"encoding/hex"
	"fmt"
	"net/netip"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/shiroemons/go-keychip/internal/keychipinfo/config"
	"github.com/shiroemons/go-keychip/internal/keychipinfo/interfaces"
	"github.com/shiroemons/go-keychip/pkg/keychip"
)

// Summary は出力用に整形した解析結果です
type Summary struct {
	Checksum    string   `yaml:"checksum"`
	FormatType  uint8    `yaml:"format_type"`
	GameID      string   `yaml:"game_id"`
	Region      Flag     `yaml:"region"`
	ModelType   Flag     `yaml:"model_type"`
	SystemFlag  Flag     `yaml:"system_flag"`
	BillingMode uint8    `yaml:"billing_mode"`
	PlatformID  string   `yaml:"platform_id"`
	DvdFlag     uint8    `yaml:"dvd_flag"`
	NetworkAddr string   `yaml:"network_addr"`
	Label       string   `yaml:"label"`
	Data        DataInfo `yaml:"data"`
}

// Flag は生の値と表示名の組です
type Flag struct {
	ID   uint8  `yaml:"id"`
	Name string `yaml:"name"`
}

// DataInfo は暗号データの整形結果です
type DataInfo struct {
	Variant string `yaml:"variant"`
	Length  int    `yaml:"length"`
	Seed    string `yaml:"seed"`
	Key     string `yaml:"key"`
	IV      string `yaml:"iv"`
}

// printable はASCIIの表示可能文字以外を '.' に置き換えます
var printable = runes.Map(func(r rune) rune {
	if r > unicode.MaxASCII || !unicode.IsPrint(r) {
		return '.'
	}
	return r
})

// Printable は文字列を表示用に変換します。
// 不正なバイトも '.' に置き換えられます。
func Printable(s string) string {
	out, _, err := transform.String(printable, s)
	if err != nil {
		return strings.Repeat(".", len(s))
	}
	return out
}

// NewSummary はRecordから出力用の構造体を作成します
func NewSummary(rec keychip.Record) Summary {
	info := rec.Info
	s := Summary{
		Checksum:    fmt.Sprintf("%08X", info.Checksum),
		FormatType:  info.FormatType,
		GameID:      Printable(info.GameID),
		Region:      Flag{ID: info.RegionID, Name: info.RegionName()},
		ModelType:   Flag{ID: info.ModelTypeID, Name: info.ModelName()},
		SystemFlag:  Flag{ID: info.SystemFlagID, Name: info.SystemFlag().String()},
		BillingMode: info.BillingMode,
		PlatformID:  Printable(info.PlatformID),
		DvdFlag:     info.DvdFlag,
		NetworkAddr: netip.AddrFrom4(info.NetworkAddr).String(),
		Label:       Printable(info.Label()),
	}
	if rec.Data != nil {
		s.Data = DataInfo{
			Variant: rec.Data.Variant().String(),
			Length:  rec.Data.Length(),
			Seed:    toHex(rec.Data.GetSeed()),
			Key:     toHex(rec.Data.GetKey()),
			IV:      toHex(rec.Data.GetIV()),
		}
	}
	return s
}

// New は出力形式に対応するFormatterを返します
func New(format string) (interfaces.Formatter, error) {
	switch format {
	case config.FormatText:
		return &TextFormatter{}, nil
	case config.FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// TextFormatter はテキスト形式で出力します
type TextFormatter struct{}

// Extension は出力ファイルの拡張子を返します
func (f *TextFormatter) Extension() string {
	return "txt"
}

// Format はRecordをテキスト形式に整形します
func (f *TextFormatter) Format(rec keychip.Record) (string, error) {
	s := NewSummary(rec)
	var builder strings.Builder

	builder.WriteString("#メタデータ\n")
	fmt.Fprintf(&builder, "Checksum:     %s\n", s.Checksum)
	fmt.Fprintf(&builder, "FormatType:   %d\n", s.FormatType)
	fmt.Fprintf(&builder, "GameID:       %s\n", s.GameID)
	fmt.Fprintf(&builder, "Region:       %s (0x%02X %s)\n", s.Region.Name, s.Region.ID, rec.Info.RegionFlag())
	fmt.Fprintf(&builder, "ModelType:    %s (0x%02X %s)\n", s.ModelType.Name, s.ModelType.ID, rec.Info.ModelType())
	fmt.Fprintf(&builder, "SystemFlag:   %s (0x%02X)\n", s.SystemFlag.Name, s.SystemFlag.ID)
	fmt.Fprintf(&builder, "BillingMode:  %d\n", s.BillingMode)
	fmt.Fprintf(&builder, "PlatformID:   %s\n", s.PlatformID)
	fmt.Fprintf(&builder, "DvdFlag:      %d\n", s.DvdFlag)
	fmt.Fprintf(&builder, "NetworkAddr:  %s\n", s.NetworkAddr)
	fmt.Fprintf(&builder, "Label:        %s\n", s.Label)

	builder.WriteString("#暗号データ\n")
	fmt.Fprintf(&builder, "Variant:      %s (0x%X bytes)\n", s.Data.Variant, s.Data.Length)
	fmt.Fprintf(&builder, "Seed:         %s\n", s.Data.Seed)
	fmt.Fprintf(&builder, "Key:          %s\n", s.Data.Key)
	fmt.Fprintf(&builder, "IV:           %s\n", s.Data.IV)

	return builder.String(), nil
}

// YAMLFormatter はYAML形式で出力します
type YAMLFormatter struct{}

// Extension は出力ファイルの拡張子を返します
func (f *YAMLFormatter) Extension() string {
	return "yaml"
}

// Format はRecordをYAML形式に整形します
func (f *YAMLFormatter) Format(rec keychip.Record) (string, error) {
	out, err := yaml.Marshal(NewSummary(rec))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMarshalYAML, err)
	}
	return string(out), nil
}

// toHex はバイト列を大文字の16進文字列に変換します
func toHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
