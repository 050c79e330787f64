package manipulador

import (
	"net/http"
	"strconv"

	"servico-processos/internal/servico"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PessoaHandlers struct {
	Pessoas *servico.PessoaServico
}

type pessoaRequisicao struct {
	NomeCompleto string `json:"nomeCompleto" binding:"required"`
	CpfCnpj      string `json:"cpfCnpj" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Telefone     string `json:"telefone" binding:"required"`
}

// POST /api/v1/pessoa
func (h *PessoaHandlers) Criar(c *gin.Context) {
	var req pessoaRequisicao
	if err := c.ShouldBindJSON(&req); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	pessoa, err := h.Pessoas.Criar(req.NomeCompleto, req.CpfCnpj, req.Email, req.Telefone)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, pessoa)
}

// GET /api/v1/pessoa/:id
func (h *PessoaHandlers) BuscarPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responderRequisicaoInvalida(c, "ID invalido")
		return
	}

	pessoa, err := h.Pessoas.BuscarPorID(id)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

// PUT /api/v1/pessoa/:id
func (h *PessoaHandlers) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		responderRequisicaoInvalida(c, "ID invalido")
		return
	}

	var req pessoaRequisicao
	if err := c.ShouldBindJSON(&req); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	pessoa, err := h.Pessoas.Atualizar(id, req.NomeCompleto, req.CpfCnpj, req.Email, req.Telefone)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

// GET /api/v1/pessoa
func (h *PessoaHandlers) ListarPaginadas(c *gin.Context) {
	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Pessoas.ListarPaginadas(pagina, tamanho, c.Query("sortBy"), c.Query("sortDirection"))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// GET /api/v1/pessoa/search?nome=
func (h *PessoaHandlers) BuscarPorNome(c *gin.Context) {
	nome := c.Query("nome")
	if nome == "" {
		responderRequisicaoInvalida(c, "Parametro 'nome' obrigatorio")
		return
	}

	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Pessoas.BuscarPorNome(nome, pagina, tamanho)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// GET /api/v1/pessoa/cpf/:cpfCnpj
func (h *PessoaHandlers) BuscarPorCpfCnpj(c *gin.Context) {
	pessoa, err := h.Pessoas.BuscarPorCpfCnpj(c.Param("cpfCnpj"))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, pessoa)
}

func parametrosPagina(c *gin.Context) (int, int) {
	pagina, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || pagina < 0 {
		pagina = 0
	}
	tamanho, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || tamanho <= 0 {
		tamanho = 10
	}
	return pagina, tamanho
}
