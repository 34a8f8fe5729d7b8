// Package models holds the GORM models of the catalog feature.
package models
