package entity

import (
	"gorm.io/gorm"
)

// Modos de transporte de impresión soportados por la terminal.
const (
	TransportDriver    = "driver"
	TransportEscPos    = "escpos"
	TransportTCP       = "tcp"
	TransportRaw       = "raw"
	TransportBluetooth = "bluetooth"
)

// Station es un destino físico de impresión ("caja", "cocina"), cada uno
// con su transporte y dirección.
type Station struct {
	gorm.Model
	Name      string `json:"name" gorm:"uniqueIndex"`
	Transport string `json:"transport"`
	// Address: nombre de impresora (driver), path del dispositivo (escpos)
	Address string `json:"address"`
	// Solo para transporte tcp
	Host string `json:"host"`
	Port int    `json:"port"`
	// Reservado para bluetooth
	Mac     string `json:"mac"`
	Enabled bool   `json:"enabled"`
}
