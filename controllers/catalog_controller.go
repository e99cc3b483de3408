package controllers

import (
	"github.com/estefano99/pedidos-pos/pkg/resp"
	"github.com/estefano99/pedidos-pos/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// Sync baja el catálogo del backend y pisa el cache local.
func (cc *CatalogController) Sync(c *gin.Context) {
	if err := cc.Catalog.Sync(); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"synced": true})
}

func (cc *CatalogController) Products(c *gin.Context) {
	products, err := cc.Catalog.Products()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

func (cc *CatalogController) Product(c *gin.Context) {
	product, err := cc.Catalog.Product(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "producto no encontrado")
		return
	}
	resp.OK(c, product)
}

func (cc *CatalogController) Ingredients(c *gin.Context) {
	ingredients, err := cc.Catalog.Ingredients()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ingredients)
}

func (cc *CatalogController) Categories(c *gin.Context) {
	categories, err := cc.Catalog.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}
