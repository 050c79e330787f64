package dominio

// Códigos de erro de negócio expostos na resposta HTTP.
const (
	CodigoPessoaNaoEncontrada     = "PESSOA_NOT_FOUND"
	CodigoPessoaJaExiste          = "PESSOA_ALREADY_EXISTS"
	CodigoProcessoNaoEncontrado   = "PROCESSO_NOT_FOUND"
	CodigoProcessoJaExiste        = "PROCESSO_ALREADY_EXISTS"
	CodigoProcessoNaoPodeArquivar = "PROCESSO_CANNOT_BE_ARCHIVED"
	CodigoTransicaoEstadoInvalida = "PROCESSO_INVALID_STATE_TRANSITION"
	CodigoCampoInvalido           = "CAMPO_INVALIDO"
)

// ErroNegocio representa uma violação de regra de negócio. A camada HTTP
// traduz o código para o status e o corpo {code, message, timestamp}.
type ErroNegocio struct {
	Codigo   string
	Mensagem string
}

func (e *ErroNegocio) Error() string {
	return e.Mensagem
}

func novoErroCampoInvalido(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoCampoInvalido, Mensagem: mensagem}
}

func novoErroTransicao(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoTransicaoEstadoInvalida, Mensagem: mensagem}
}

// ErroPessoaNaoEncontrada e demais construtores são usados pela camada de serviço.
func ErroPessoaNaoEncontrada(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoPessoaNaoEncontrada, Mensagem: mensagem}
}

func ErroPessoaJaExiste(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoPessoaJaExiste, Mensagem: mensagem}
}

func ErroProcessoNaoEncontrado(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoProcessoNaoEncontrado, Mensagem: mensagem}
}

func ErroProcessoJaExiste(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoProcessoJaExiste, Mensagem: mensagem}
}

func ErroProcessoNaoPodeArquivar(mensagem string) *ErroNegocio {
	return &ErroNegocio{Codigo: CodigoProcessoNaoPodeArquivar, Mensagem: mensagem}
}
