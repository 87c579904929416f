package controllers

import (
	"net/http"
	"strings"

	"github.com/adrianconde128/Proyecto-Mayan-Sunset/services"
	"github.com/adrianconde128/Proyecto-Mayan-Sunset/utils"

	"github.com/gin-gonic/gin"
)

type CrearPedidoRequest struct {
	IDHabitacion uint                  `json:"id_habitacion" binding:"required"`
	Items        []services.ItemPedido `json:"items"`
	MetodoPago   string                `json:"metodo_pago"`
}

type RestauranteController struct {
	RestauranteSvc *services.RestauranteService
}

func NewRestauranteController(svc *services.RestauranteService) *RestauranteController {
	return &RestauranteController{RestauranteSvc: svc}
}

// CrearPedido maneja POST /api/pedidos.
func (rc *RestauranteController) CrearPedido(c *gin.Context) {
	var req CrearPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Solicitud mal formada")
		return
	}

	metodo := strings.TrimSpace(req.MetodoPago)
	if metodo == "" {
		metodo = "Cargo a habitación"
	}

	resumen, err := rc.RestauranteSvc.ProcesarPedido(req.IDHabitacion, req.Items, metodo)
	if err != nil {
		responderError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, resumen)
}

// ListarMenu maneja GET /api/menu?tipo=Bebida (el filtro es opcional).
func (rc *RestauranteController) ListarMenu(c *gin.Context) {
	platos, err := rc.RestauranteSvc.ListarMenuPorTipo(strings.TrimSpace(c.Query("tipo")))
	if err != nil {
		responderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, platos)
}

// ListarInventario maneja GET /api/inventario.
func (rc *RestauranteController) ListarInventario(c *gin.Context) {
	ingredientes, err := rc.RestauranteSvc.ListarInventario()
	if err != nil {
		responderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ingredientes)
}

// BajoStock maneja GET /api/inventario/bajo-stock.
func (rc *RestauranteController) BajoStock(c *gin.Context) {
	ingredientes, err := rc.RestauranteSvc.VerificarBajoStock()
	if err != nil {
		responderError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ingredientes)
}
