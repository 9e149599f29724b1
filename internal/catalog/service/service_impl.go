package service

import (
	"context"
	"errors"

	catalogdomain "github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceParam struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(p ServiceParam) catalogdomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("catalog.service"),
	}
}

func (s *Service) List(ctx context.Context) ([]catalogdomain.Product, error) {
	var products []catalogdomain.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (catalogdomain.Product, error) {
	var product catalogdomain.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalogdomain.Product{}, catalogdomain.ErrProductNotFound
	}
	if err != nil {
		return catalogdomain.Product{}, err
	}
	return product, nil
}
