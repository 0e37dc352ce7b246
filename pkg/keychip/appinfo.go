package keychip

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// AppInfoLength はメタデータ領域のバイト数
const AppInfoLength = 0x30

// AppInfo はKeychipバイナリ先頭のメタデータを表します
type AppInfo struct {
	Checksum     uint32  // ファイルのCRC値 (検証はしない)
	FormatType   byte    // フォーマットタイプ
	GameID       string  // ゲームID (4文字、終端なし)
	RegionID     byte    // 対応地域
	ModelTypeID  byte    // 機能区分
	SystemFlagID byte    // システムフラグ
	BillingMode  byte    // 課金フラグ
	PlatformID   string  // プラットフォームID (3文字)
	DvdFlag      byte    // DVDフラグ
	NetworkAddr  [4]byte // 対応ネットワークアドレス
}

// rawAppInfo はメタデータ領域のバイナリレイアウト (0x30バイト)
type rawAppInfo struct {
	Checksum     uint32
	FormatType   uint8
	_            [3]byte // Padding
	GameID       [4]byte
	RegionID     uint8
	ModelTypeID  uint8
	SystemFlagID uint8
	BillingMode  uint8
	PlatformID   [3]byte
	DvdFlag      uint8
	NetworkAddr  [4]byte
	_            [24]byte // 予約領域 (未解析)
}

// decodeAppInfo は先頭0x30バイトからAppInfoを解析します
func decodeAppInfo(data []byte) (AppInfo, error) {
	if err := checkLength(StageAppInfo, data, 0, AppInfoLength); err != nil {
		return AppInfo{}, err
	}

	var raw rawAppInfo
	if err := binary.Read(bytes.NewReader(data[:AppInfoLength]), binary.LittleEndian, &raw); err != nil {
		return AppInfo{}, fmt.Errorf("%s: %w", StageAppInfo, err)
	}

	return AppInfo{
		Checksum:     raw.Checksum,
		FormatType:   raw.FormatType,
		GameID:       string(raw.GameID[:]),
		RegionID:     raw.RegionID,
		ModelTypeID:  raw.ModelTypeID,
		SystemFlagID: raw.SystemFlagID,
		BillingMode:  raw.BillingMode,
		PlatformID:   string(raw.PlatformID[:]),
		DvdFlag:      raw.DvdFlag,
		NetworkAddr:  raw.NetworkAddr,
	}, nil
}

// RegionFlag はリージョンフラグを返します
func (i AppInfo) RegionFlag() RegionFlag {
	return RegionFlag(i.RegionID)
}

// ModelType は機能区分を返します
func (i AppInfo) ModelType() ModelType {
	return ModelType(i.ModelTypeID)
}

// SystemFlag はシステムフラグを返します
func (i AppInfo) SystemFlag() SystemFlag {
	return SystemFlag(i.SystemFlagID)
}

// RegionName はリージョン名を返します。
// 単一地域とGL (日本以外) 以外の組み合わせは "--" になります。
func (i AppInfo) RegionName() string {
	switch i.RegionID {
	case 1:
		return "JP"
	case 2:
		return "US"
	case 4:
		return "EX"
	case 8:
		return "CN"
	case 14:
		return "GL"
	default:
		return "--"
	}
}

// ModelName は機能区分の略称を返します
func (i AppInfo) ModelName() string {
	switch i.ModelTypeID {
	case 1:
		return "SV"
	case 2:
		return "ST"
	case 3:
		return "LV"
	case 4:
		return "TM"
	default:
		return "--"
	}
}

// Label はラベル印字に使われる文字列を返します
func (i AppInfo) Label() string {
	return fmt.Sprintf("%s %s %s", i.GameID, i.ModelName(), i.RegionName())
}
