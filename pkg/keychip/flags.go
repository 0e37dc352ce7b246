package keychip

import (
	"fmt"
	"strings"
)

// ModelType は機能区分
type ModelType byte

const (
	ModelServer    ModelType = 1
	ModelSatellite ModelType = 2
	ModelLive      ModelType = 3
	ModelTerminal  ModelType = 4
)

// String は機能区分の名前を返します
func (m ModelType) String() string {
	switch m {
	case ModelServer:
		return "Server"
	case ModelSatellite:
		return "Satellite"
	case ModelLive:
		return "Live"
	case ModelTerminal:
		return "Terminal"
	default:
		return fmt.Sprintf("ModelType(0x%02X)", byte(m))
	}
}

// RegionFlag は対応地域のビットフラグ
type RegionFlag byte

const (
	RegionJapan  RegionFlag = 1 << iota // JPN ( 日本 )
	RegionUSA                           // USA ( 米国 )
	RegionExport                        // EXP ( 外国 )
	RegionChina                         // CHN ( 中国 )
	// bit4〜7 は使用しない
)

var regionFlagNames = []struct {
	flag RegionFlag
	name string
}{
	{RegionJapan, "Japan"},
	{RegionUSA, "USA"},
	{RegionExport, "Export"},
	{RegionChina, "China"},
}

// Has はflagが全て立っているかを返します
func (r RegionFlag) Has(flag RegionFlag) bool {
	return r&flag == flag
}

// String は立っているフラグ名を "|" 区切りで返します
func (r RegionFlag) String() string {
	if r == 0 {
		return "None"
	}
	var names []string
	rest := r
	for _, def := range regionFlagNames {
		if r.Has(def.flag) {
			names = append(names, def.name)
			rest &^= def.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%02X", byte(rest)))
	}
	return strings.Join(names, "|")
}

// SystemFlag はシステムフラグのビットフラグ
type SystemFlag byte

const (
	SystemDevType      SystemFlag = 1 << iota // develop-flag ( 開発 フラグ )
	SystemBinding                             // binding-flag ( 紐付け )
	SystemAllNetType                          // allnet-flag  ( ALL.Net Auth フラグ )
	SystemLanServer                           // deliver-flag ( LAN インストール )
	SystemAllNetSlim                          // authrtl-flag ( ALL.Net Slim フラグ )
	SystemBillingTitle                        // billing-flag ( ALL.Net 課金 フラグ )
	SystemBillingType                         // rental-flag  ( P-ras 課金 フラグ )
	// bit7 は使用しない
)

var systemFlagNames = []struct {
	flag SystemFlag
	name string
}{
	{SystemDevType, "DevType"},
	{SystemBinding, "Binding"},
	{SystemAllNetType, "AllNetType"},
	{SystemLanServer, "LanServer"},
	{SystemAllNetSlim, "AllNetSlim"},
	{SystemBillingTitle, "BillingTitle"},
	{SystemBillingType, "BillingType"},
}

// Has はflagが全て立っているかを返します
func (s SystemFlag) Has(flag SystemFlag) bool {
	return s&flag == flag
}

// String は立っているフラグ名を "|" 区切りで返します
func (s SystemFlag) String() string {
	if s == 0 {
		return "None"
	}
	var names []string
	rest := s
	for _, def := range systemFlagNames {
		if s.Has(def.flag) {
			names = append(names, def.name)
			rest &^= def.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%02X", byte(rest)))
	}
	return strings.Join(names, "|")
}
