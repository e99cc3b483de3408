package controllers

import (
	"strconv"

	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/pkg/resp"
	"github.com/estefano99/pedidos-pos/repository"

	"github.com/gin-gonic/gin"
)

// StationController administra las estaciones de impresión (panel de
// configuración de la terminal).
type StationController struct {
	Repo *repository.StationRepository
}

func NewStationController(repo *repository.StationRepository) *StationController {
	return &StationController{Repo: repo}
}

type stationIn struct {
	Name      string `json:"name" binding:"required"`
	Transport string `json:"transport" binding:"required"`
	Address   string `json:"address"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Mac       string `json:"mac"`
	Enabled   bool   `json:"enabled"`
}

func (sc *StationController) List(c *gin.Context) {
	stations, err := sc.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stations)
}

func (sc *StationController) Create(c *gin.Context) {
	var req stationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	s := entity.Station{
		Name:      req.Name,
		Transport: req.Transport,
		Address:   req.Address,
		Host:      req.Host,
		Port:      req.Port,
		Mac:       req.Mac,
		Enabled:   req.Enabled,
	}
	if err := sc.Repo.Create(&s); err != nil {
		resp.Conflict(c, err.Error())
		return
	}
	resp.Created(c, s)
}

func (sc *StationController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id inválido")
		return
	}

	var req stationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	s := entity.Station{
		Name:      req.Name,
		Transport: req.Transport,
		Address:   req.Address,
		Host:      req.Host,
		Port:      req.Port,
		Mac:       req.Mac,
		Enabled:   req.Enabled,
	}
	s.ID = uint(id)
	if err := sc.Repo.Update(&s); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, s)
}

func (sc *StationController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id inválido")
		return
	}
	if err := sc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
