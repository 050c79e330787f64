package dominio

// transicoes é a visão de estratégia do ciclo de vida: um conjunto de
// transições por status. Nunca é armazenada no Processo; estadoDe deriva o
// conjunto a partir do status persistido a cada operação.
type transicoes struct {
	ativar    func(*Processo) error
	suspender func(*Processo) error
	arquivar  func(*Processo) error
}

func estadoDe(status StatusProcesso) transicoes {
	switch status {
	case StatusProcessoSuspenso:
		return estadoSuspenso
	case StatusProcessoArquivado:
		return estadoArquivado
	default:
		return estadoAberto
	}
}

var estadoAberto = transicoes{
	ativar: func(p *Processo) error {
		return novoErroTransicao("Não é possível ativar um processo já ativo.")
	},
	suspender: func(p *Processo) error {
		p.StatusProcesso = StatusProcessoSuspenso
		return nil
	},
	arquivar: arquivarSePermitido,
}

var estadoSuspenso = transicoes{
	ativar: func(p *Processo) error {
		p.StatusProcesso = StatusProcessoAtivo
		return nil
	},
	suspender: func(p *Processo) error {
		return novoErroTransicao("Não é possível suspender um processo já suspenso.")
	},
	arquivar: arquivarSePermitido,
}

var estadoArquivado = transicoes{
	ativar: func(p *Processo) error {
		return novoErroTransicao("Não é possível ativar um processo arquivado.")
	},
	suspender: func(p *Processo) error {
		return novoErroTransicao("Não é possível suspender um processo arquivado.")
	},
	arquivar: func(p *Processo) error {
		return novoErroTransicao("Não é possível arquivar um processo já arquivado.")
	},
}

// Arquivamento é terminal e só acontece com as partes e ações obrigatórias
// presentes, tanto a partir de ATIVO quanto de SUSPENSO.
func arquivarSePermitido(p *Processo) error {
	if !p.PodeArquivar() {
		return novoErroTransicao("Não é possível arquivar sem partes e ações obrigatórias.")
	}
	p.StatusProcesso = StatusProcessoArquivado
	return nil
}
