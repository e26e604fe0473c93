package implementation

import (
	"context"
	"encoding/json"

	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/model"
	"shopsphere-admin-be/internal/repository/contract"
	"shopsphere-admin-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type productRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &productRepositoryImpl{db: db}
}

func (r *productRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	mp, err := r.toModel(product)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(mp).Error
}

func (r *productRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	var mp model.Product
	query := r.db.WithContext(ctx).Preload("Category")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&mp).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&mp), nil
}

func (r *productRepositoryImpl) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return r.FindOne(ctx, specification.Filter("sku", sku))
}

func (r *productRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	var models []*model.Product
	query := r.db.WithContext(ctx).Preload("Category")

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var products []*entity.Product
	for _, mp := range models {
		products = append(products, r.toEntity(mp))
	}
	return products, nil
}

func (r *productRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Product{})

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	err := query.Count(&count).Error
	return count, err
}

func (r *productRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	images, err := json.Marshal(product.ImageURLs)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"image_urls":  datatypes.JSON(images),
			"is_active":   product.IsActive,
		}).Error
}

func (r *productRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepositoryImpl) toModel(p *entity.Product) (*model.Product, error) {
	images, err := json.Marshal(p.ImageURLs)
	if err != nil {
		return nil, err
	}
	return &model.Product{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURLs:   datatypes.JSON(images),
		IsActive:    p.IsActive,
	}, nil
}

func (r *productRepositoryImpl) toEntity(mp *model.Product) *entity.Product {
	var images []string
	if len(mp.ImageURLs) > 0 {
		// Malformed rows degrade to no images rather than failing the read.
		_ = json.Unmarshal(mp.ImageURLs, &images)
	}

	p := &entity.Product{
		ID:          mp.ID,
		CategoryID:  mp.CategoryID,
		SKU:         mp.SKU,
		Name:        mp.Name,
		Description: mp.Description,
		Price:       mp.Price,
		ImageURLs:   images,
		IsActive:    mp.IsActive,
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
	if mp.Category.ID != uuid.Nil {
		p.Category = &entity.Category{
			ID:       mp.Category.ID,
			Name:     mp.Category.Name,
			Slug:     mp.Category.Slug,
			IsActive: mp.Category.IsActive,
		}
	}
	return p
}

type categoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

func (r *categoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(&model.Category{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		IsActive:    category.IsActive,
	}).Error
}

func (r *categoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var mc model.Category
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.First(&mc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return r.toEntity(&mc), nil
}

func (r *categoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.db.WithContext(ctx)

	for _, spec := range specs {
		query = spec.Apply(query)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	var categories []*entity.Category
	for _, mc := range models {
		categories = append(categories, r.toEntity(mc))
	}
	return categories, nil
}

func (r *categoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
			"is_active":   category.IsActive,
		}).Error
}

func (r *categoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *categoryRepositoryImpl) toEntity(mc *model.Category) *entity.Category {
	return &entity.Category{
		ID:          mc.ID,
		Name:        mc.Name,
		Slug:        mc.Slug,
		Description: mc.Description,
		IsActive:    mc.IsActive,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
}
