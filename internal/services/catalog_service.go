package services

import (
	"database/sql"
	"errors"

	"shopmart/internal/domain"
	"shopmart/internal/repos"
	"shopmart/internal/validate"
)

const placeholderImage = "https://via.placeholder.com/500"

// ProductInput carries the fields of a product create request. Numeric
// fields accept JSON numbers or numeric strings; the admin form submits
// strings.
type ProductInput struct {
	Name          string       `json:"name"`
	Price         validate.Num `json:"price"`
	OriginalPrice validate.Num `json:"originalPrice"`
	Discount      validate.Num `json:"discount"`
	Rating        validate.Num `json:"rating"`
	Reviews       validate.Num `json:"reviews"`
	Image         string       `json:"image"`
	Category      string       `json:"category"`
	Description   string       `json:"description"`
	Stock         validate.Num `json:"stock"`
	Sold          validate.Num `json:"sold"`
}

// ProductPatch is a partial update; nil fields are left untouched. The id is
// immutable and has no field here.
type ProductPatch struct {
	Name          *string       `json:"name"`
	Price         *validate.Num `json:"price"`
	OriginalPrice *validate.Num `json:"originalPrice"`
	Discount      *validate.Num `json:"discount"`
	Rating        *validate.Num `json:"rating"`
	Reviews       *validate.Num `json:"reviews"`
	Image         *string       `json:"image"`
	Category      *string       `json:"category"`
	Description   *string       `json:"description"`
	Stock         *validate.Num `json:"stock"`
	Sold          *validate.Num `json:"sold"`
}

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) List(category, search, sort string) ([]domain.Product, error) {
	if norm, ok := validate.Sort(sort); ok {
		sort = norm
	} else {
		// Unknown sort keys fall back to insertion order.
		sort = ""
	}
	return s.Prods.List(category, search, sort)
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

// Create assigns defaults and stores a new product. Price is the only
// required field; an unparseable price is rejected rather than stored as a
// garbage value.
func (s *CatalogService) Create(in ProductInput) (domain.Product, error) {
	if in.Price.Empty() {
		return domain.Product{}, &ValidationError{Msg: "price is required"}
	}
	price, err := in.Price.Float()
	if err != nil {
		return domain.Product{}, &ValidationError{Msg: "invalid price"}
	}

	p := domain.Product{
		Name:          in.Name,
		Price:         price,
		OriginalPrice: in.OriginalPrice.FloatOr(price),
		Discount:      in.Discount.IntOr(0),
		Rating:        in.Rating.FloatOr(0),
		Reviews:       in.Reviews.IntOr(0),
		Image:         in.Image,
		Category:      in.Category,
		Description:   in.Description,
		Stock:         in.Stock.IntOr(0),
		Sold:          in.Sold.IntOr(0),
	}
	if p.Image == "" {
		p.Image = placeholderImage
	}
	if p.Category == "" {
		p.Category = "General"
	}

	return s.Prods.Create(p)
}

// Update shallow-merges the provided fields onto the stored record.
// Last-write-wins; the read-then-write pair is not atomic.
func (s *CatalogService) Update(id string, patch ProductPatch) (domain.Product, error) {
	p, err := s.Prods.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = patch.Price.FloatOr(p.Price)
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = patch.OriginalPrice.FloatOr(p.OriginalPrice)
	}
	if patch.Discount != nil {
		p.Discount = patch.Discount.IntOr(p.Discount)
	}
	if patch.Rating != nil {
		p.Rating = patch.Rating.FloatOr(p.Rating)
	}
	if patch.Reviews != nil {
		p.Reviews = patch.Reviews.IntOr(p.Reviews)
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Stock != nil {
		p.Stock = patch.Stock.IntOr(p.Stock)
	}
	if patch.Sold != nil {
		p.Sold = patch.Sold.IntOr(p.Sold)
	}

	if err := s.Prods.Update(p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, ErrNotFound
		}
		return domain.Product{}, err
	}
	return p, nil
}

func (s *CatalogService) Delete(id string) error {
	err := s.Prods.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *CatalogService) Categories() ([]string, error) {
	return s.Prods.Categories()
}
