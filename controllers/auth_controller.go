package controllers

import (
	"errors"

	"github.com/estefano99/pedidos-pos/backendapi"
	"github.com/estefano99/pedidos-pos/configs"
	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/pkg/resp"
	"github.com/estefano99/pedidos-pos/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB      *gorm.DB
	Cfg     *configs.Config
	Backend *backendapi.Client
}

func NewAuthController(db *gorm.DB, cfg *configs.Config, backend *backendapi.Client) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Backend: backend}
}

// ===== Sesión local (operador con PIN) =====

type loginIn struct {
	Name string `json:"name" binding:"required"`
	Pin  string `json:"pin" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var op entity.Operator
	if err := ac.DB.Where("name = ?", req.Name).First(&op).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "operador o PIN incorrecto")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(op.PinHash), []byte(req.Pin)) != nil {
		resp.Unauthorized(c, "operador o PIN incorrecto")
		return
	}

	token, err := utils.GenerateToken(op.ID, op.Role, ac.Cfg.JWTSecret, ac.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token":    token,
		"operator": op,
	})
}

// Me devuelve el operador de la sesión actual.
func (ac *AuthController) Me(c *gin.Context) {
	id := utils.CurrentOperatorID(c)

	var op entity.Operator
	if err := ac.DB.First(&op, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Unauthorized(c, "operador no encontrado")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, op)
}

// ===== Sesión contra el backend del tenant =====

type backendLoginIn struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// BackendLogin loguea la terminal contra el backend y guarda el token;
// el tenantId viaja en los claims.
func (ac *AuthController) BackendLogin(c *gin.Context) {
	var req backendLoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := ac.Backend.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	tenantID, err := utils.TenantFromToken(token)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"tenantId": tenantID})
}

// Session informa si hay tenant resuelto, para que la UI sepa si puede
// iniciar pedidos.
func (ac *AuthController) Session(c *gin.Context) {
	token := ac.Backend.Token()
	if token == "" {
		resp.OK(c, gin.H{"connected": false})
		return
	}

	tenantID, err := utils.TenantFromToken(token)
	if err != nil {
		resp.OK(c, gin.H{"connected": false, "error": err.Error()})
		return
	}
	resp.OK(c, gin.H{"connected": true, "tenantId": tenantID})
}
