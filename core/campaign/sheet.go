package campaign

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheet is returned when no campaign sheet can be found.
var ErrNoSheet = errors.New("campaign sheet not found")

// Sheet reads the campaign code map from a spreadsheet held in object storage.
type Sheet struct {
	client storage.Client
	bucket string
	cfg    Config
}

// NewSheet creates a campaign sheet reader.
func NewSheet(client storage.Client, bucket string, cfg Config) *Sheet {
	return &Sheet{client: client, bucket: bucket, cfg: cfg}
}

// FetchCampaignCodes downloads and parses the configured sheet.
func (s *Sheet) FetchCampaignCodes(ctx context.Context) (reconcile.CampaignCodeMap, error) {
	object, err := s.resolveObject(ctx)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", object, err)
	}
	defer obj.Close()

	var rows [][]string
	switch strings.ToLower(path.Ext(object)) {
	case ".csv":
		rows, err = readCSV(obj)
	case ".xlsx":
		rows, err = readXLSX(obj, s.cfg.Sheet)
	default:
		return nil, fmt.Errorf("unsupported campaign sheet format %q", path.Ext(object))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", object, err)
	}

	return ParseRows(rows), nil
}

func (s *Sheet) resolveObject(ctx context.Context) (string, error) {
	if !strings.HasSuffix(s.cfg.Object, "/") {
		return s.cfg.Object, nil
	}

	var (
		newest string
		err    error
	)
	for _, ext := range []string{".xlsx", ".csv"} {
		newest, err = storage.LatestObject(ctx, s.client, s.bucket, s.cfg.Object, ext)
		if err != nil {
			return "", err
		}
		if newest != "" {
			return newest, nil
		}
	}
	return "", fmt.Errorf("%w under %s", ErrNoSheet, s.cfg.Object)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, ErrNoSheet
	}
	return f.GetRows(sheet)
}

// ParseRows builds the campaign code map from raw sheet rows.
// A first row naming an "id" column is treated as a header and its "code"
// column (or "commercial_code") is used; otherwise columns 0 and 1 are read.
// IDs are trimmed, blank IDs are skipped and the first occurrence of an ID wins.
func ParseRows(rows [][]string) reconcile.CampaignCodeMap {
	codes := make(reconcile.CampaignCodeMap)
	if len(rows) == 0 {
		return codes
	}

	idCol, codeCol := 0, 1
	if id, code, ok := headerColumns(rows[0]); ok {
		idCol, codeCol = id, code
		rows = rows[1:]
	}

	for _, row := range rows {
		id := strings.TrimSpace(cell(row, idCol))
		if id == "" {
			continue
		}
		if _, exists := codes[id]; exists {
			continue
		}
		codes[id] = strings.TrimSpace(cell(row, codeCol))
	}
	return codes
}

func headerColumns(row []string) (idCol, codeCol int, ok bool) {
	idCol, codeCol = -1, -1
	for i, name := range row {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			if idCol < 0 {
				idCol = i
			}
		case "code", "commercial_code":
			if codeCol < 0 {
				codeCol = i
			}
		}
	}
	if idCol < 0 {
		return 0, 1, false
	}
	if codeCol < 0 {
		codeCol = idCol + 1
	}
	return idCol, codeCol, true
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
