package repository

import (
	"context"

	"contracting-cms/internal/model"

	"gorm.io/gorm"
)

// ProductDetailRepository owns the per-property values of a product.
type ProductDetailRepository interface {
	ListByProductID(ctx context.Context, productID string) ([]model.ProductDetail, error)
	ReplaceForProduct(ctx context.Context, productID string, details []model.ProductDetail) ([]model.ProductDetail, error)
}

type productDetailRepository struct {
	db *gorm.DB
}

func NewProductDetailRepository(db *gorm.DB) ProductDetailRepository {
	return &productDetailRepository{db: db}
}

func (r *productDetailRepository) ListByProductID(ctx context.Context, productID string) ([]model.ProductDetail, error) {
	var details []model.ProductDetail
	if err := GetDB(ctx, r.db).Where("product_id = ?", productID).Order("created_at asc").Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

// ReplaceForProduct deletes the product's details and inserts the new set.
// Run it in the same transaction as the product write.
func (r *productDetailRepository) ReplaceForProduct(ctx context.Context, productID string, details []model.ProductDetail) ([]model.ProductDetail, error) {
	db := GetDB(ctx, r.db)
	if err := db.Where("product_id = ?", productID).Delete(&model.ProductDetail{}).Error; err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return []model.ProductDetail{}, nil
	}

	fresh := make([]model.ProductDetail, 0, len(details))
	for _, d := range details {
		fresh = append(fresh, model.ProductDetail{
			ProductID:  productID,
			PropertyID: d.PropertyID,
			ValueEn:    d.ValueEn,
			ValueAr:    d.ValueAr,
		})
	}
	if err := db.Create(&fresh).Error; err != nil {
		return nil, err
	}
	return fresh, nil
}
