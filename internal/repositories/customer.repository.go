package repositories

import (
	"context"
	"rentall/internal/database"
	. "rentall/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	GetByID(ctx context.Context, id int) (*Customer, error)
}

type customerRepository struct {
	db  database.DB
	log logger.Logger
}

func NewCustomerRepository(db database.DB) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: logger.New("customerRepository"),
	}
}

func (r *customerRepository) GetByID(ctx context.Context, id int) (*Customer, error) {
	var customer Customer
	if err := r.db.SQLWithContext(ctx).First(&customer, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, r.log.Function("GetByID").Err("failed to get customer", err, "id", id)
	}

	return &customer, nil
}
