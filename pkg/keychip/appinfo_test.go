package keychip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAppInfo_Offsets(t *testing.T) {
	data := []byte{
		// checksum
		0x78, 0x56, 0x34, 0x12,
		// format type, padding
		0x02, 0xF1, 0xF2, 0xF3,
		// game id
		'S', 'D', 'E', 'D',
		// region, model type, system flag, billing mode
		0x01, 0x03, 0x25, 0x07,
		// platform id, dvd flag
		'A', 'A', 'V', 0x09,
		// network addr
		0xC0, 0xA8, 0x8B, 0x00,
	}
	reserved := make([]byte, 24)
	for i := range reserved {
		reserved[i] = 0xF0 + byte(i%16)
	}
	data = append(data, reserved...)
	require.Len(t, data, AppInfoLength)

	info, err := decodeAppInfo(data)
	require.NoError(t, err)

	want := AppInfo{
		Checksum:     0x12345678,
		FormatType:   0x02,
		GameID:       "SDED",
		RegionID:     0x01,
		ModelTypeID:  0x03,
		SystemFlagID: 0x25,
		BillingMode:  0x07,
		PlatformID:   "AAV",
		DvdFlag:      0x09,
		NetworkAddr:  [4]byte{0xC0, 0xA8, 0x8B, 0x00},
	}
	assert.Equal(t, want, info)
}

func TestDecodeAppInfo_ReservedBytesHaveNoEffect(t *testing.T) {
	base := buildTestHeader(0xCAFEBABE, "ABCD", 8, 2)
	filled := append([]byte(nil), base...)
	for _, i := range []int{5, 6, 7} {
		filled[i] = 0xFF
	}
	for i := 24; i < AppInfoLength; i++ {
		filled[i] = 0xFF
	}

	want, err := decodeAppInfo(base)
	require.NoError(t, err)
	got, err := decodeAppInfo(filled)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDecodeAppInfo_NonASCIIRetained(t *testing.T) {
	header := buildTestHeader(0, "", 0, 0)
	copy(header[8:12], []byte{0x00, 0x80, 0xFF, 'A'})

	info, err := decodeAppInfo(header)
	require.NoError(t, err)
	assert.Equal(t, "\x00\x80\xffA", info.GameID)
}

func TestAppInfo_RegionName(t *testing.T) {
	tests := []struct {
		regionID byte
		want     string
	}{
		{0, "--"},
		{1, "JP"},
		{2, "US"},
		{3, "--"},
		{4, "EX"},
		{6, "--"},
		{8, "CN"},
		{14, "GL"},
		{15, "--"},
		{16, "--"},
		{255, "--"},
	}

	for _, tt := range tests {
		info := AppInfo{RegionID: tt.regionID}
		assert.Equal(t, tt.want, info.RegionName(), "RegionName() for %d", tt.regionID)
	}
}

func TestAppInfo_ModelName(t *testing.T) {
	tests := []struct {
		modelTypeID byte
		want        string
	}{
		{0, "--"},
		{1, "SV"},
		{2, "ST"},
		{3, "LV"},
		{4, "TM"},
		{5, "--"},
		{255, "--"},
	}

	for _, tt := range tests {
		info := AppInfo{ModelTypeID: tt.modelTypeID}
		assert.Equal(t, tt.want, info.ModelName(), "ModelName() for %d", tt.modelTypeID)
	}
}

func TestAppInfo_Label(t *testing.T) {
	tests := []struct {
		name string
		info AppInfo
		want string
	}{
		{
			name: "サーバー 日本",
			info: AppInfo{GameID: "SBZV", ModelTypeID: 1, RegionID: 1},
			want: "SBZV SV JP",
		},
		{
			name: "未設定",
			info: AppInfo{GameID: "SDEY"},
			want: "SDEY -- --",
		},
		{
			name: "日本以外",
			info: AppInfo{GameID: "SDDT", ModelTypeID: 2, RegionID: 14},
			want: "SDDT ST GL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Label())
		})
	}
}
