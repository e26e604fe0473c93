package service

import (
	"context"
	"time"

	"shopsphere-admin-be/internal/dto"
	"shopsphere-admin-be/internal/entity"
	"shopsphere-admin-be/internal/pkg/serverutils"
	"shopsphere-admin-be/internal/repository/specification"
	"shopsphere-admin-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICatalogService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProducts(ctx context.Context, page, limit int, categoryID *uuid.UUID) (*dto.ProductListResponse, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
	}
}

func toCategoryResponse(category *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: category.Description,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
	}
}

func toProductResponse(product *entity.Product) dto.ProductResponse {
	res := dto.ProductResponse{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		SKU:         product.SKU,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURLs:   product.ImageURLs,
		IsActive:    product.IsActive,
		CreatedAt:   product.CreatedAt,
	}
	if product.Category != nil {
		res.CategoryName = product.Category.Name
	}
	return res
}

func (s *catalogService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := &entity.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}

	res := toCategoryResponse(category)
	return &res, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res := toCategoryResponse(category)
		result = append(result, &res)
	}
	return result, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Refuse to delete a category that still has products
	count, err := uow.ProductRepository().Count(ctx, specification.Filter("category_id", id))
	if err != nil {
		return err
	}
	if count > 0 {
		return serverutils.ErrConflict
	}

	return uow.CategoryRepository().Delete(ctx, id)
}

func (s *catalogService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: req.CategoryID})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, serverutils.ErrNotFound
	}

	existing, err := uow.ProductRepository().FindBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.ErrConflict
	}

	product := &entity.Product{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURLs:   req.ImageURLs,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, product); err != nil {
		return nil, err
	}

	product.Category = category
	res := toProductResponse(product)
	return &res, nil
}

func (s *catalogService) GetProducts(ctx context.Context, page, limit int, categoryID *uuid.UUID) (*dto.ProductListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var filters []specification.Specification
	if categoryID != nil {
		filters = append(filters, specification.Filter("category_id", *categoryID))
	}

	total, err := uow.ProductRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Page:     page,
		Limit:    limit,
		Total:    total,
	}
	for _, product := range products {
		result.Products = append(result.Products, toProductResponse(product))
	}
	return result, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toProductResponse(product)
	return &res, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, serverutils.ErrNotFound
	}

	if req.CategoryID != nil {
		category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: *req.CategoryID})
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, serverutils.ErrNotFound
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ImageURLs != nil {
		product.ImageURLs = req.ImageURLs
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	res := toProductResponse(product)
	return &res, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().Delete(ctx, id)
}
