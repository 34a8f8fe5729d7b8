package campaign

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func xlsxBody(t *testing.T, rows [][]any) io.ReadCloser {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return io.NopCloser(bytes.NewReader(buf.Bytes()))
}

func TestParseRows(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want reconcile.CampaignCodeMap
	}{
		{
			name: "Empty",
			rows: nil,
			want: reconcile.CampaignCodeMap{},
		},
		{
			name: "NoHeader",
			rows: [][]string{{"1", "C-1"}, {"2", "C-2"}},
			want: reconcile.CampaignCodeMap{"1": "C-1", "2": "C-2"},
		},
		{
			name: "HeaderReordered",
			rows: [][]string{{"Code", "Notes", "ID"}, {"C-9", "x", " 9 "}},
			want: reconcile.CampaignCodeMap{"9": "C-9"},
		},
		{
			name: "BlankAndDuplicateIDs",
			rows: [][]string{{"id", "code"}, {"", "lost"}, {"1", "first"}, {"1 ", "second"}, {"2"}},
			want: reconcile.CampaignCodeMap{"1": "first", "2": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRows(tt.rows))
		})
	}
}

func TestSheet_FetchCampaignCodes_XLSX(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	body := xlsxBody(t, [][]any{{"ID", "Code"}, {"1", "SUMMER-1"}, {2, "SUMMER-2"}})
	m.On("GetObject", ctx, "catalog", "campaign/codes.xlsx", minio.GetObjectOptions{}).Return(body, nil)

	sheet := NewSheet(m, "catalog", Config{Object: "campaign/codes.xlsx"})
	codes, err := sheet.FetchCampaignCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, reconcile.CampaignCodeMap{"1": "SUMMER-1", "2": "SUMMER-2"}, codes)
}

func TestSheet_FetchCampaignCodes_CSV(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	body := io.NopCloser(bytes.NewBufferString("id,code\n7, WINTER\n"))
	m.On("GetObject", ctx, "catalog", "campaign/codes.csv", mock.Anything).Return(body, nil)

	sheet := NewSheet(m, "catalog", Config{Object: "campaign/codes.csv"})
	codes, err := sheet.FetchCampaignCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, reconcile.CampaignCodeMap{"7": "WINTER"}, codes)
}

func TestSheet_FetchCampaignCodes_LatestUnderPrefix(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "campaign/2026-09.xlsx", LastModified: time.Now().Add(-time.Hour)}
	ch <- minio.ObjectInfo{Key: "campaign/2026-10.xlsx", LastModified: time.Now()}
	close(ch)
	m.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return((<-chan minio.ObjectInfo)(ch)).Once()
	m.On("GetObject", ctx, "catalog", "campaign/2026-10.xlsx", mock.Anything).
		Return(xlsxBody(t, [][]any{{"1", "OCT"}}), nil)

	codes, err := NewSheet(m, "catalog", Config{Object: "campaign/"}).FetchCampaignCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, reconcile.CampaignCodeMap{"1": "OCT"}, codes)
}

func TestSheet_FetchCampaignCodes_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("GetObjectFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "catalog", "campaign/codes.xlsx", mock.Anything).Return(nil, assert.AnError)

		_, err := NewSheet(m, "catalog", Config{Object: "campaign/codes.xlsx"}).FetchCampaignCodes(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "catalog", "campaign/codes.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewBufferString("1,2")), nil)

		_, err := NewSheet(m, "catalog", Config{Object: "campaign/codes.txt"}).FetchCampaignCodes(ctx)
		assert.ErrorContains(t, err, "unsupported campaign sheet format")
	})

	t.Run("EmptyPrefix", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return(nil)

		_, err := NewSheet(m, "catalog", Config{Object: "campaign/"}).FetchCampaignCodes(ctx)
		assert.ErrorIs(t, err, ErrNoSheet)
	})
}
