package configs

import (
	"log"

	"github.com/estefano99/pedidos-pos/entity"
	"golang.org/x/crypto/bcrypt"
)

// Crea el operador inicial de la terminal
func SeedOperator() error {
	db := DB()
	name := getEnv("OPERATOR_NAME", "")
	pin := getEnv("OPERATOR_PIN", "")
	if name == "" || pin == "" {
		log.Println("skip seeding operator: falta OPERATOR_NAME/OPERATOR_PIN")
		return nil
	}

	var count int64
	db.Model(&entity.Operator{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		log.Println("operator ya existe:", name)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	op := entity.Operator{
		Name:    name,
		PinHash: string(hash),
		Role:    "admin",
	}
	return db.Create(&op).Error
}

// Estaciones de impresión por defecto; la config real se edita después
// desde el panel de ajustes.
func SeedStations() error {
	db := DB()

	db.Where(entity.Station{Name: "caja"}).
		Attrs(entity.Station{Transport: entity.TransportDriver, Enabled: true}).
		FirstOrCreate(&entity.Station{})
	db.Where(entity.Station{Name: "cocina"}).
		Attrs(entity.Station{Transport: entity.TransportTCP, Port: 9100, Enabled: true}).
		FirstOrCreate(&entity.Station{})

	log.Println("stations seeded")
	return nil
}
