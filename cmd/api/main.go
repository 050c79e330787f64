package main

import (
	"log"

	"servico-processos/internal/config"
	"servico-processos/internal/manipulador"
	"servico-processos/internal/publicador"
	"servico-processos/internal/servico"

	"github.com/gin-gonic/gin"
)

func main() {
	// inicializar DB
	db, err := config.InicializarDB()
	if err != nil {
		log.Fatalf("Erro ao inicializar DB: %v", err)
	}

	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	// serviços e handlers
	pessoas := &servico.PessoaServico{DB: db}
	processos := &servico.ProcessoServico{DB: db, Pessoas: pessoas}

	pessoaHandlers := &manipulador.PessoaHandlers{Pessoas: pessoas}
	processoHandlers := &manipulador.ProcessoHandlers{Processos: processos}

	// iniciar publicador de eventos (outbox pattern)
	if err := publicador.IniciarPublicador(db); err != nil {
		log.Fatalf("Erro ao iniciar publicador outbox: %v", err)
	}

	// setup servidor Gin
	r := gin.Default()

	// CORS simples
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// rotas API
	v1 := r.Group("/api/v1")
	{
		// pessoas
		v1.POST("/pessoa", pessoaHandlers.Criar)
		v1.GET("/pessoa", pessoaHandlers.ListarPaginadas)
		v1.GET("/pessoa/search", pessoaHandlers.BuscarPorNome)
		v1.GET("/pessoa/cpf/:cpfCnpj", pessoaHandlers.BuscarPorCpfCnpj)
		v1.GET("/pessoa/:id", pessoaHandlers.BuscarPorID)
		v1.PUT("/pessoa/:id", pessoaHandlers.Atualizar)

		// processos
		v1.POST("/processo", processoHandlers.Criar)
		v1.GET("/processo", processoHandlers.ListarPaginados)
		v1.GET("/processo/status/:status", processoHandlers.BuscarPorStatus)
		v1.GET("/processo/data-abertura", processoHandlers.BuscarPorDataAbertura)
		v1.GET("/processo/pessoa/id/:pessoaId", processoHandlers.BuscarPorPessoaID)
		v1.GET("/processo/pessoa/cpf-cnpj/:cpfCnpj", processoHandlers.BuscarPorPessoaCpfCnpj)
		v1.GET("/processo/:id", processoHandlers.BuscarPorID)
		v1.PUT("/processo/:id", processoHandlers.Atualizar)

		// operações de negócio
		v1.PUT("/processo/:id/ativar", processoHandlers.Ativar)
		v1.PUT("/processo/:id/suspender", processoHandlers.Suspender)
		v1.PUT("/processo/:id/arquivar", processoHandlers.Arquivar)

		// partes envolvidas
		v1.POST("/processo/:id/partes-envolvidas", processoHandlers.AdicionarParte)
		v1.POST("/processo/:id/partes-envolvidas/batch", processoHandlers.AdicionarPartes)
		v1.DELETE("/processo/:id/partes-envolvidas/:parteId", processoHandlers.RemoverParte)

		// ações
		v1.POST("/processo/:id/acoes", processoHandlers.AdicionarAcao)
		v1.POST("/processo/:id/acoes/batch", processoHandlers.AdicionarAcoes)
		v1.DELETE("/processo/:id/acoes/:acaoId", processoHandlers.RemoverAcao)
	}

	log.Println("Servidor Processos iniciado na porta 8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Erro ao iniciar servidor: %v", err)
	}
}
