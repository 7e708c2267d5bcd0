package routes

import (
	"log"
	"os"
	"strconv"

	_ "informatica_xpto/docs" // This will be auto-generated
	"informatica_xpto/internal/adapter/http/handlers"
	repository2 "informatica_xpto/internal/adapter/persistence/repository"
	"informatica_xpto/internal/infrastructure/database"
	"informatica_xpto/internal/infrastructure/payments"
	"informatica_xpto/internal/usecase"
	"informatica_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	clienteRepo := repository2.NewClienteDynamoRepository(ddb)
	inventarioRepo := repository2.NewInventarioDynamoRepository(ddb)
	pedidoRepo := repository2.NewPedidoDynamoRepository(ddb)
	osRepo := repository2.NewOrdemServicoDynamoRepository(ddb)
	transacaoRepo := repository2.NewTransacaoDynamoRepository(ddb)
	pcRepo := repository2.NewPCMontadoDynamoRepository(ddb)
	pagamentoRepo := repository2.NewPagamentoDynamoRepository(ddb)

	reconcileUseCase := usecase.NewReconcileUseCase(pedidoRepo, osRepo, inventarioRepo, transacaoRepo)
	clienteUseCase := usecase.NewClienteUseCase(clienteRepo)
	inventarioUseCase := usecase.NewInventarioUseCase(inventarioRepo)
	pedidoUseCase := usecase.NewPedidoUseCase(pedidoRepo, reconcileUseCase)
	osUseCase := usecase.NewOrdemServicoUseCase(osRepo)
	financasUseCase := usecase.NewFinancasUseCase(transacaoRepo, pedidoRepo, osRepo)
	montagemUseCase := usecase.NewMontagemUseCase(inventarioRepo, pcRepo, pedidoRepo, transacaoRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	pagamentoUseCase := usecase.NewPagamentoUseCase(pagamentoRepo, pedidoRepo, paymentGateway)

	clienteHandler := handlers.NewClienteHandler(clienteUseCase)
	inventarioHandler := handlers.NewInventarioHandler(inventarioUseCase)
	pedidoHandler := handlers.NewPedidoHandler(pedidoUseCase, reconcileUseCase)
	osHandler := handlers.NewOrdemServicoHandler(osUseCase, reconcileUseCase)
	financasHandler := handlers.NewFinancasHandler(financasUseCase)
	montagemHandler := handlers.NewMontagemHandler(montagemUseCase, inventarioUseCase)
	pagamentoHandler := handlers.NewPagamentoHandler(pagamentoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, backofficeHandlers{
		clientes:   clienteHandler,
		inventario: inventarioHandler,
		pedidos:    pedidoHandler,
		ordens:     osHandler,
		financas:   financasHandler,
		montagem:   montagemHandler,
		pagamentos: pagamentoHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
