package models

import (
	"time"

	"catalog-manager/core/reconcile"
)

// CatalogItemRecord is the persisted form of a catalog item.
type CatalogItemRecord struct {
	ID       string `gorm:"column:id;primaryKey;size:64"`
	Position int    `gorm:"column:position;index"`

	RemoteCode          string `gorm:"column:remote_code;size:64;index"`
	CommercialCode      string `gorm:"column:commercial_code;size:64"`
	Title               string `gorm:"column:title"`
	Description         string `gorm:"column:description;type:text"`
	Summary             string `gorm:"column:summary;type:text"`
	Price               string `gorm:"column:price;size:64"`
	SalePrice           string `gorm:"column:sale_price;size:64"`
	ImageLink           string `gorm:"column:image_link"`
	AdditionalImageLink string `gorm:"column:additional_image_link"`
	Link                string `gorm:"column:link"`
	Quantity            int    `gorm:"column:quantity"`
	Availability        string `gorm:"column:availability;size:32"`
	Condition           string `gorm:"column:item_condition;size:32"` // condition is reserved in MySQL
	Brand               string `gorm:"column:brand"`
	ProductType         string `gorm:"column:product_type"`
	Status              string `gorm:"column:status;size:16;index"`

	Extras map[string]any `gorm:"column:extras;type:text;serializer:json"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (CatalogItemRecord) TableName() string {
	return "catalog_items"
}

// FromItem converts a catalog item at the given snapshot position.
func FromItem(item reconcile.CatalogItem, position int) CatalogItemRecord {
	return CatalogItemRecord{
		ID:                  item.ID,
		Position:            position,
		RemoteCode:          item.RemoteCode,
		CommercialCode:      item.CommercialCode,
		Title:               item.Title,
		Description:         item.Description,
		Summary:             item.Summary,
		Price:               item.Price,
		SalePrice:           item.SalePrice,
		ImageLink:           item.ImageLink,
		AdditionalImageLink: item.AdditionalImageLink,
		Link:                item.Link,
		Quantity:            item.Quantity,
		Availability:        item.Availability,
		Condition:           item.Condition,
		Brand:               item.Brand,
		ProductType:         item.ProductType,
		Status:              string(item.Status),
		Extras:              item.Extras,
	}
}

// ToItem converts the record back to a catalog item.
func (r CatalogItemRecord) ToItem() reconcile.CatalogItem {
	return reconcile.CatalogItem{
		ID:                  r.ID,
		RemoteCode:          r.RemoteCode,
		CommercialCode:      r.CommercialCode,
		Title:               r.Title,
		Description:         r.Description,
		Summary:             r.Summary,
		Price:               r.Price,
		SalePrice:           r.SalePrice,
		ImageLink:           r.ImageLink,
		AdditionalImageLink: r.AdditionalImageLink,
		Link:                r.Link,
		Quantity:            r.Quantity,
		Availability:        r.Availability,
		Condition:           r.Condition,
		Brand:               r.Brand,
		ProductType:         r.ProductType,
		Status:              reconcile.Status(r.Status),
		Extras:              r.Extras,
	}
}
