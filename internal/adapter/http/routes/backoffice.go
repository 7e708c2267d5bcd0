package routes

import (
	"informatica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEmpresas = "/empresas/:empresa_id"
)

type backofficeHandlers struct {
	clientes   *handlers.ClienteHandler
	inventario *handlers.InventarioHandler
	pedidos    *handlers.PedidoHandler
	ordens     *handlers.OrdemServicoHandler
	financas   *handlers.FinancasHandler
	montagem   *handlers.MontagemHandler
	pagamentos *handlers.PagamentoHandler
}

// addBackofficeRoutes mounts every tenant-scoped route of the back office.
// All paths carry the empresa_id prefix; cross-tenant access is impossible by
// construction.
func addBackofficeRoutes(rg *gin.RouterGroup, h backofficeHandlers) {
	empresa := rg.Group(PathEmpresas)

	clientes := empresa.Group("/clientes")
	{
		clientes.POST("", h.clientes.Create)
		clientes.GET("", h.clientes.List)
		clientes.GET("/:cliente_id", h.clientes.GetByID)
		clientes.PUT("/:cliente_id", h.clientes.Update)
		clientes.DELETE("/:cliente_id", h.clientes.Delete)
	}

	inventario := empresa.Group("/inventario")
	{
		inventario.POST("", h.inventario.Create)
		inventario.GET("", h.inventario.List)
		inventario.GET("/:item_id", h.inventario.GetByID)
		inventario.PUT("/:item_id", h.inventario.Update)
		inventario.DELETE("/:item_id", h.inventario.Delete)
	}

	pedidos := empresa.Group("/pedidos")
	{
		pedidos.POST("", h.pedidos.Create)
		pedidos.GET("", h.pedidos.List)
		pedidos.GET("/:pedido_id", h.pedidos.GetByID)
		pedidos.PUT("/:pedido_id", h.pedidos.Update)
		// Status changes run the stock-and-finance reconciliation.
		pedidos.PATCH("/:pedido_id/status", h.pedidos.ChangeStatus)
		pedidos.DELETE("/:pedido_id", h.pedidos.Delete)
	}

	ordens := empresa.Group("/ordens-servico")
	{
		ordens.POST("", h.ordens.Create)
		ordens.GET("", h.ordens.List)
		ordens.GET("/:os_id", h.ordens.GetByID)
		ordens.PUT("/:os_id", h.ordens.Update)
		ordens.PATCH("/:os_id/status", h.ordens.ChangeStatus)
		ordens.DELETE("/:os_id", h.ordens.Delete)
	}

	financas := empresa.Group("/financas")
	{
		financas.POST("/transacoes", h.financas.Adicionar)
		financas.GET("/transacoes", h.financas.Listar)
		financas.PATCH("/transacoes/:transacao_id", h.financas.Atualizar)
		financas.DELETE("/transacoes/:transacao_id", h.financas.Deletar)
		financas.POST("/vendas", h.financas.AdicionarVenda)
		financas.GET("/resumo", h.financas.Resumo)
	}

	montagem := empresa.Group("/montagem")
	{
		montagem.GET("/componentes", h.montagem.ListAvailable)
		montagem.POST("/quote", h.montagem.QuoteBuild)
		montagem.POST("/pcs", h.montagem.SalvarPCMontado)
		montagem.POST("/pedidos", h.montagem.FinalizarPedido)
	}

	pagamentos := empresa.Group("/pagamentos")
	{
		pagamentos.POST("/:pedido_id", h.pagamentos.CreateByPedidoID)
		pagamentos.GET("/:pedido_id", h.pagamentos.GetByPedidoID)
	}
}
