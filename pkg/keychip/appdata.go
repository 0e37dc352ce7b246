package keychip

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	// RingAppDataLength はRing形式の暗号データ領域のバイト数
	RingAppDataLength = 0xB0
	// NuAppDataLength はNu形式の暗号データ領域のバイト数
	NuAppDataLength = 0x40

	// RingDataOffset はRing形式の暗号データの絶対オフセット。
	// ヘッダ末尾からここまでの192バイトは解析しない。
	RingDataOffset = 240

	// ringParsedLength はRing形式の領域のうち実際に解析するバイト数
	ringParsedLength = 48

	variantThreshold = 0x70
)

// Variant は暗号データの形式
type Variant int

const (
	VariantNu Variant = iota
	VariantRing
)

// String は形式名を返します
func (v Variant) String() string {
	switch v {
	case VariantNu:
		return "Nu"
	case VariantRing:
		return "Ring"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// AppData は暗号データの共通インターフェース。
// 実装は RingAppData と NuAppData のみです。
type AppData interface {
	// Variant は暗号データの形式を返します
	Variant() Variant

	// Length は暗号データ領域の規定バイト数を返します
	Length() int

	// GetSeed はSeedのコピーを返します
	GetSeed() []byte

	// GetKey はKeyのコピーを返します
	GetKey() []byte

	// GetIV はIVのコピーを返します
	GetIV() []byte

	appData()
}

// RingAppData はRing形式の暗号データ
type RingAppData struct {
	Seed [16]byte
	Key  [16]byte
	IV   [16]byte
}

func (RingAppData) appData() {}

// Variant は VariantRing を返します
func (RingAppData) Variant() Variant { return VariantRing }

// Length は 0xB0 を返します
func (RingAppData) Length() int { return RingAppDataLength }

// GetSeed はSeedのコピーを返します
func (d RingAppData) GetSeed() []byte { return d.Seed[:] }

// GetKey はKeyのコピーを返します
func (d RingAppData) GetKey() []byte { return d.Key[:] }

// GetIV はIVのコピーを返します
func (d RingAppData) GetIV() []byte { return d.IV[:] }

// decodeRingAppData はオフセット240以降をRing形式として解析します。
// 先頭48バイトのみ解析し、残り (通常128バイト) は読み飛ばします。
func decodeRingAppData(data []byte) (RingAppData, error) {
	if err := checkLength(StageRing, data, RingDataOffset, ringParsedLength); err != nil {
		return RingAppData{}, err
	}

	reader := bytes.NewReader(data)
	if _, err := reader.Seek(RingDataOffset, io.SeekStart); err != nil {
		return RingAppData{}, fmt.Errorf("%s: %w", StageRing, err)
	}

	var d RingAppData
	if err := binary.Read(reader, binary.LittleEndian, &d); err != nil {
		return RingAppData{}, fmt.Errorf("%s: %w", StageRing, err)
	}
	return d, nil
}

// NuAppData はNu形式の暗号データ
type NuAppData struct {
	Key  [16]byte
	IV   [16]byte
	Seed [32]byte
}

func (NuAppData) appData() {}

// Variant は VariantNu を返します
func (NuAppData) Variant() Variant { return VariantNu }

// Length は 0x40 を返します
func (NuAppData) Length() int { return NuAppDataLength }

// GetSeed はSeedのコピーを返します
func (d NuAppData) GetSeed() []byte { return d.Seed[:] }

// GetKey はKeyのコピーを返します
func (d NuAppData) GetKey() []byte { return d.Key[:] }

// GetIV はIVのコピーを返します
func (d NuAppData) GetIV() []byte { return d.IV[:] }

// decodeNuAppData はヘッダ直後をNu形式として解析します
func decodeNuAppData(data []byte) (NuAppData, error) {
	if err := checkLength(StageNu, data, AppInfoLength, NuAppDataLength); err != nil {
		return NuAppData{}, err
	}

	var d NuAppData
	if err := binary.Read(bytes.NewReader(data[AppInfoLength:]), binary.LittleEndian, &d); err != nil {
		return NuAppData{}, fmt.Errorf("%s: %w", StageNu, err)
	}
	return d, nil
}
