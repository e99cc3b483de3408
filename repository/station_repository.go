package repository

import (
	"github.com/estefano99/pedidos-pos/entity"
	"gorm.io/gorm"
)

type StationRepository struct {
	DB *gorm.DB
}

func NewStationRepository(db *gorm.DB) *StationRepository {
	return &StationRepository{DB: db}
}

func (r *StationRepository) List() ([]entity.Station, error) {
	var out []entity.Station
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

// GetByName busca la estación por nombre ("caja", "cocina").
func (r *StationRepository) GetByName(name string) (*entity.Station, error) {
	var s entity.Station
	if err := r.DB.Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StationRepository) Create(s *entity.Station) error {
	return r.DB.Create(s).Error
}

func (r *StationRepository) Update(s *entity.Station) error {
	return r.DB.Save(s).Error
}

func (r *StationRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Station{}, id).Error
}
