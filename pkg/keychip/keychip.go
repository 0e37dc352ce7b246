// Package keychip はKeychipに格納されるアプリケーションバイナリデータを解析するためのパッケージです。
//
// バイナリは先頭48バイトのメタデータ (AppInfo) と、ハードウェア世代ごとに
// レイアウトの異なる暗号データ (AppData) で構成されます。
//
// サポートする暗号データ形式:
//   - Ring: 全体長が0x70バイトを超えるもの。オフセット240から0xB0バイト
//   - Nu: 全体長が0x70バイト以下のもの。ヘッダ直後から0x40バイト
//
// 基本的な使い方:
//
//	data, err := os.ReadFile("SDED.bin")
//	if err != nil {
//	    return err
//	}
//	rec, err := keychip.Decode(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(rec.Info.Label()) // "SDED LV JP"
//	if ring, ok := rec.Data.(keychip.RingAppData); ok {
//	    // ring.Seed, ring.Key, ring.IV を利用...
//	}
//
// Decode はパッケージ変数を一切変更しないため、複数のゴルーチンから同時に呼び出せます。
package keychip

// Record は解析済みのKeychipデータを表します。
// 全てのバイト列は入力から値としてコピーされるため、Decode後に入力を書き換えても影響を受けません。
type Record struct {
	Info AppInfo // メタデータ
	Data AppData // 暗号データ (RingAppData または NuAppData)
}

// Decode はKeychipのアプリケーションバイナリを解析します。
// 途中で失敗した場合は空のRecordとエラーを返し、部分的な結果は返しません。
func Decode(data []byte) (Record, error) {
	info, err := decodeAppInfo(data)
	if err != nil {
		return Record{}, err
	}

	var appData AppData
	switch SelectVariant(len(data)) {
	case VariantRing:
		appData, err = decodeRingAppData(data)
	default:
		appData, err = decodeNuAppData(data)
	}
	if err != nil {
		return Record{}, err
	}

	return Record{
		Info: info,
		Data: appData,
	}, nil
}

// SelectVariant は入力全体の長さから暗号データの形式を判定します。
// ヘッダの内容は一切参照しません。
func SelectVariant(length int) Variant {
	if length > variantThreshold {
		return VariantRing
	}
	return VariantNu
}
