// Package campaign reads the per-campaign commercial code map.
//
// Marketing maintains the map as a spreadsheet stored in the catalog bucket. Sheet
// downloads it through storage.Client and parses .xlsx files with excelize or .csv
// files with encoding/csv. The resulting reconcile.CampaignCodeMap maps trimmed item
// IDs to their commercial code.
//
// # Usage
//
//	sheet := campaign.NewSheet(store, cfg.Storage.Bucket, cfg.Campaign)
//	codes, err := sheet.FetchCampaignCodes(ctx)
package campaign
