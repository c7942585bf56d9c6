package service

import (
	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	LoanService    LoanService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Services, logger),
		CatalogService: NewCatalogService(storages.BookRepository, logger),
		LoanService:    NewLoanService(storages.LoanRepository, cfg.Workers, logger),
	}
}
