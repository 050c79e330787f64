package manipulador

import (
	"net/http"
	"time"

	"servico-processos/internal/dominio"
	"servico-processos/internal/servico"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProcessoHandlers struct {
	Processos *servico.ProcessoServico
}

type processoRequisicao struct {
	Numero       string `json:"numero" binding:"required"`
	Descricao    string `json:"descricao"`
	DataAbertura string `json:"dataAbertura"` // YYYY-MM-DD, opcional
}

type parteRequisicao struct {
	PessoaID string `json:"pessoaId" binding:"required"`
	Tipo     string `json:"tipo" binding:"required"`
}

type acaoRequisicao struct {
	Tipo      string `json:"tipo" binding:"required"`
	Descricao string `json:"descricao"`
}

// POST /api/v1/processo
func (h *ProcessoHandlers) Criar(c *gin.Context) {
	var req processoRequisicao
	if err := c.ShouldBindJSON(&req); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	dataAbertura, ok := parseDataOpcional(c, req.DataAbertura)
	if !ok {
		return
	}

	processo, err := h.Processos.Criar(req.Numero, req.Descricao, dataAbertura)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, processo)
}

// PUT /api/v1/processo/:id
func (h *ProcessoHandlers) Atualizar(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	// atualização parcial: campos omitidos ficam como estão
	var req struct {
		Numero       string `json:"numero"`
		Descricao    string `json:"descricao"`
		DataAbertura string `json:"dataAbertura"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	dataAbertura, ok := parseDataOpcional(c, req.DataAbertura)
	if !ok {
		return
	}

	processo, err := h.Processos.Atualizar(id, req.Numero, req.Descricao, dataAbertura)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// GET /api/v1/processo/:id
func (h *ProcessoHandlers) BuscarPorID(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	processo, err := h.Processos.BuscarPorID(id)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// GET /api/v1/processo
func (h *ProcessoHandlers) ListarPaginados(c *gin.Context) {
	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Processos.ListarPaginados(pagina, tamanho, c.Query("sortBy"), c.Query("sortDirection"))
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// GET /api/v1/processo/status/:status
func (h *ProcessoHandlers) BuscarPorStatus(c *gin.Context) {
	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Processos.BuscarPorStatus(c.Param("status"), pagina, tamanho)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// GET /api/v1/processo/data-abertura?dataInicial=&dataFinal=
func (h *ProcessoHandlers) BuscarPorDataAbertura(c *gin.Context) {
	dataInicial, err := time.Parse("2006-01-02", c.Query("dataInicial"))
	if err != nil {
		responderRequisicaoInvalida(c, "Parametro 'dataInicial' invalido, use YYYY-MM-DD")
		return
	}
	dataFinal, err := time.Parse("2006-01-02", c.Query("dataFinal"))
	if err != nil {
		responderRequisicaoInvalida(c, "Parametro 'dataFinal' invalido, use YYYY-MM-DD")
		return
	}

	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Processos.BuscarPorDataAbertura(dataInicial, dataFinal, pagina, tamanho)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// GET /api/v1/processo/pessoa/id/:pessoaId
func (h *ProcessoHandlers) BuscarPorPessoaID(c *gin.Context) {
	pessoaID, ok := parseID(c, c.Param("pessoaId"))
	if !ok {
		return
	}

	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Processos.BuscarPorPessoaID(pessoaID, pagina, tamanho)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// GET /api/v1/processo/pessoa/cpf-cnpj/:cpfCnpj
func (h *ProcessoHandlers) BuscarPorPessoaCpfCnpj(c *gin.Context) {
	pagina, tamanho := parametrosPagina(c)

	resultado, err := h.Processos.BuscarPorPessoaCpfCnpj(c.Param("cpfCnpj"), pagina, tamanho)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, resultado)
}

// PUT /api/v1/processo/:id/ativar
func (h *ProcessoHandlers) Ativar(c *gin.Context) {
	h.transicionar(c, h.Processos.Ativar)
}

// PUT /api/v1/processo/:id/suspender
func (h *ProcessoHandlers) Suspender(c *gin.Context) {
	h.transicionar(c, h.Processos.Suspender)
}

// PUT /api/v1/processo/:id/arquivar
func (h *ProcessoHandlers) Arquivar(c *gin.Context) {
	h.transicionar(c, h.Processos.Arquivar)
}

func (h *ProcessoHandlers) transicionar(c *gin.Context, operacao func(uuid.UUID) (*dominio.Processo, error)) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	processo, err := operacao(id)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// POST /api/v1/processo/:id/partes-envolvidas
func (h *ProcessoHandlers) AdicionarParte(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req parteRequisicao
	if err := c.ShouldBindJSON(&req); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	entrada, ok := parteParaEntrada(c, req)
	if !ok {
		return
	}

	processo, err := h.Processos.AdicionarParte(id, entrada)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// POST /api/v1/processo/:id/partes-envolvidas/batch
func (h *ProcessoHandlers) AdicionarPartes(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var reqs []parteRequisicao
	if err := c.ShouldBindJSON(&reqs); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	entradas := make([]servico.ParteEntrada, 0, len(reqs))
	for _, req := range reqs {
		entrada, ok := parteParaEntrada(c, req)
		if !ok {
			return
		}
		entradas = append(entradas, entrada)
	}

	processo, err := h.Processos.AdicionarPartes(id, entradas)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// DELETE /api/v1/processo/:id/partes-envolvidas/:parteId
func (h *ProcessoHandlers) RemoverParte(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	parteID, ok := parseID(c, c.Param("parteId"))
	if !ok {
		return
	}

	processo, err := h.Processos.RemoverParte(id, parteID)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// POST /api/v1/processo/:id/acoes
func (h *ProcessoHandlers) AdicionarAcao(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var req acaoRequisicao
	if err := c.ShouldBindJSON(&req); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	processo, err := h.Processos.AdicionarAcao(id, servico.AcaoEntrada{
		Tipo:      dominio.TipoAcao(req.Tipo),
		Descricao: req.Descricao,
	})
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// POST /api/v1/processo/:id/acoes/batch
func (h *ProcessoHandlers) AdicionarAcoes(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}

	var reqs []acaoRequisicao
	if err := c.ShouldBindJSON(&reqs); err != nil {
		responderRequisicaoInvalida(c, err.Error())
		return
	}

	entradas := make([]servico.AcaoEntrada, 0, len(reqs))
	for _, req := range reqs {
		entradas = append(entradas, servico.AcaoEntrada{
			Tipo:      dominio.TipoAcao(req.Tipo),
			Descricao: req.Descricao,
		})
	}

	processo, err := h.Processos.AdicionarAcoes(id, entradas)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

// DELETE /api/v1/processo/:id/acoes/:acaoId
func (h *ProcessoHandlers) RemoverAcao(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"))
	if !ok {
		return
	}
	acaoID, ok := parseID(c, c.Param("acaoId"))
	if !ok {
		return
	}

	processo, err := h.Processos.RemoverAcao(id, acaoID)
	if err != nil {
		responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, processo)
}

func parseID(c *gin.Context, valor string) (uuid.UUID, bool) {
	id, err := uuid.Parse(valor)
	if err != nil {
		responderRequisicaoInvalida(c, "ID invalido")
		return uuid.Nil, false
	}
	return id, true
}

func parseDataOpcional(c *gin.Context, valor string) (*time.Time, bool) {
	if valor == "" {
		return nil, true
	}
	data, err := time.Parse("2006-01-02", valor)
	if err != nil {
		responderRequisicaoInvalida(c, "Campo 'dataAbertura' invalido, use YYYY-MM-DD")
		return nil, false
	}
	return &data, true
}

func parteParaEntrada(c *gin.Context, req parteRequisicao) (servico.ParteEntrada, bool) {
	pessoaID, err := uuid.Parse(req.PessoaID)
	if err != nil {
		responderRequisicaoInvalida(c, "Campo 'pessoaId' invalido")
		return servico.ParteEntrada{}, false
	}
	return servico.ParteEntrada{
		PessoaID: pessoaID,
		Tipo:     dominio.TipoParteEnvolvida(req.Tipo),
	}, true
}
