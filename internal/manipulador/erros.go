package manipulador

import (
	"errors"
	"log"
	"net/http"
	"time"

	"servico-processos/internal/dominio"

	"github.com/gin-gonic/gin"
)

// RespostaErro é o corpo padrão de erro da API.
type RespostaErro struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// CAMPO_INVALIDO responde 409 (convenção herdada do sistema, não 400).
var statusPorCodigo = map[string]int{
	dominio.CodigoPessoaNaoEncontrada:     http.StatusNotFound,
	dominio.CodigoProcessoNaoEncontrado:   http.StatusNotFound,
	dominio.CodigoPessoaJaExiste:          http.StatusConflict,
	dominio.CodigoProcessoJaExiste:        http.StatusConflict,
	dominio.CodigoCampoInvalido:           http.StatusConflict,
	dominio.CodigoProcessoNaoPodeArquivar: http.StatusBadRequest,
	dominio.CodigoTransicaoEstadoInvalida: http.StatusBadRequest,
}

func responderErro(c *gin.Context, err error) {
	var erroNegocio *dominio.ErroNegocio
	if errors.As(err, &erroNegocio) {
		status, ok := statusPorCodigo[erroNegocio.Codigo]
		if !ok {
			status = http.StatusBadRequest
		}
		c.JSON(status, RespostaErro{
			Code:      erroNegocio.Codigo,
			Message:   erroNegocio.Mensagem,
			Timestamp: time.Now(),
		})
		return
	}

	log.Printf("Erro interno: %v", err)
	c.JSON(http.StatusInternalServerError, RespostaErro{
		Code:      "INTERNAL_ERROR",
		Message:   "Erro interno do servidor",
		Timestamp: time.Now(),
	})
}

func responderRequisicaoInvalida(c *gin.Context, mensagem string) {
	c.JSON(http.StatusBadRequest, RespostaErro{
		Code:      "REQUISICAO_INVALIDA",
		Message:   mensagem,
		Timestamp: time.Now(),
	})
}
