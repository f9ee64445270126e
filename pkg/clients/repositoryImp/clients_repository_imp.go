package repositoryImp

import (
	"gorm.io/gorm"

	"akolite/entities"
	"akolite/pkg/apperr"
	"akolite/pkg/clients/repository"
)

type clientsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ClientsRepository { return &clientsRepo{db} }

func (r *clientsRepo) Godown() (*entities.Client, error) {
	var c entities.Client
	if err := r.db.Where("is_holding = ?", true).First(&c).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.New(apperr.NotFound, "holding client not seeded")
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientsRepo) FindByName(name string) (*entities.Client, error) {
	var c entities.Client
	if err := r.db.Where("name = ?", name).First(&c).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.Newf(apperr.NotFound, "client %q not found", name)
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientsRepo) Create(c *entities.Client) error { return r.db.Create(c).Error }
