package servico

import (
	"errors"
	"fmt"
	"time"

	"servico-processos/internal/dominio"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProcessoServico struct {
	DB      *gorm.DB
	Pessoas *PessoaServico
}

// ParteEntrada e AcaoEntrada são os dados mínimos das operações de
// sub-recurso, inclusive nas variantes em lote.
type ParteEntrada struct {
	PessoaID uuid.UUID
	Tipo     dominio.TipoParteEnvolvida
}

type AcaoEntrada struct {
	Tipo      dominio.TipoAcao
	Descricao string
}

func (s *ProcessoServico) Criar(numero, descricao string, dataAbertura *time.Time) (*dominio.Processo, error) {
	existe, err := s.existePorNumero(numero)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, dominio.ErroProcessoJaExiste(fmt.Sprintf("Um processo com número '%s' já está cadastrado", numero))
	}

	var abertura time.Time
	if dataAbertura != nil {
		abertura = *dataAbertura
	}
	processo := dominio.NovoProcesso(numero, descricao, abertura)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(processo).Error; err != nil {
			return fmt.Errorf("falha ao criar processo: %w", err)
		}
		return s.registrarEvento(tx, dominio.EventoProcessoCriado, processo)
	})
	if err != nil {
		return nil, err
	}

	return processo, nil
}

func (s *ProcessoServico) Atualizar(id uuid.UUID, numero, descricao string, dataAbertura *time.Time) (*dominio.Processo, error) {
	processo, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	if numero != "" && numero != processo.Numero {
		existe, err := s.existePorNumero(numero)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, dominio.ErroProcessoJaExiste(fmt.Sprintf("Um processo com número '%s' já está cadastrado", numero))
		}
	}

	processo.Atualizar(numero, descricao, dataAbertura)

	if err := s.DB.Omit(clause.Associations).Save(processo).Error; err != nil {
		return nil, fmt.Errorf("falha ao atualizar processo: %w", err)
	}

	return processo, nil
}

func (s *ProcessoServico) BuscarPorID(id uuid.UUID) (*dominio.Processo, error) {
	return s.buscarProcesso(s.DB, id)
}

func (s *ProcessoServico) ListarPaginados(pagina, tamanho int, ordenarPor, direcao string) (*Pagina[dominio.Processo], error) {
	consulta := ordenar(s.consultaComFilhos(), ordenarPor, direcao)
	return paginar[dominio.Processo](consulta, pagina, tamanho)
}

func (s *ProcessoServico) BuscarPorStatus(status string, pagina, tamanho int) (*Pagina[dominio.Processo], error) {
	statusProcesso := dominio.StatusProcesso(status)
	switch statusProcesso {
	case dominio.StatusProcessoAtivo, dominio.StatusProcessoSuspenso, dominio.StatusProcessoArquivado:
	default:
		return nil, &dominio.ErroNegocio{
			Codigo:   dominio.CodigoCampoInvalido,
			Mensagem: "Status inválido: deve ser ATIVO, SUSPENSO ou ARQUIVADO.",
		}
	}

	consulta := s.consultaComFilhos().Where("status_processo = ?", statusProcesso)
	return paginar[dominio.Processo](consulta, pagina, tamanho)
}

func (s *ProcessoServico) BuscarPorDataAbertura(dataInicial, dataFinal time.Time, pagina, tamanho int) (*Pagina[dominio.Processo], error) {
	consulta := s.consultaComFilhos().
		Where("data_abertura BETWEEN ? AND ?", dataInicial, dataFinal)
	return paginar[dominio.Processo](consulta, pagina, tamanho)
}

func (s *ProcessoServico) BuscarPorPessoaID(pessoaID uuid.UUID, pagina, tamanho int) (*Pagina[dominio.Processo], error) {
	processos := s.DB.Model(&dominio.ParteEnvolvida{}).
		Select("processo_id").
		Where("pessoa_id = ?", pessoaID)

	consulta := s.consultaComFilhos().Where("id IN (?)", processos)
	return paginar[dominio.Processo](consulta, pagina, tamanho)
}

func (s *ProcessoServico) BuscarPorPessoaCpfCnpj(cpfCnpj string, pagina, tamanho int) (*Pagina[dominio.Processo], error) {
	cpf, err := dominio.NovoCpfCnpj(cpfCnpj)
	if err != nil {
		return nil, err
	}

	pessoas := s.DB.Model(&dominio.Pessoa{}).
		Select("id").
		Where("cpf_cnpj = ?", cpf)
	processos := s.DB.Model(&dominio.ParteEnvolvida{}).
		Select("processo_id").
		Where("pessoa_id IN (?)", pessoas)

	consulta := s.consultaComFilhos().Where("id IN (?)", processos)
	return paginar[dominio.Processo](consulta, pagina, tamanho)
}

// Operações de negócio: a transição roda com a linha do processo travada,
// e o evento de outbox entra na mesma transação.
func (s *ProcessoServico) Ativar(id uuid.UUID) (*dominio.Processo, error) {
	return s.transicionar(id, dominio.EventoProcessoAtivado, (*dominio.Processo).Ativar)
}

func (s *ProcessoServico) Suspender(id uuid.UUID) (*dominio.Processo, error) {
	return s.transicionar(id, dominio.EventoProcessoSuspenso, (*dominio.Processo).Suspender)
}

func (s *ProcessoServico) Arquivar(id uuid.UUID) (*dominio.Processo, error) {
	return s.transicionar(id, dominio.EventoProcessoArquivado, func(p *dominio.Processo) error {
		if p.StatusProcesso != dominio.StatusProcessoArquivado && !p.PodeArquivar() {
			return dominio.ErroProcessoNaoPodeArquivar(
				"Processo não pode ser arquivado. Verifique se possui todas as partes obrigatórias (AUTOR, RÉU, ADVOGADO) e ações obrigatórias (PETIÇÃO, AUDIÊNCIA e SENTENÇA ou DESISTÊNCIA).")
		}
		return p.Arquivar()
	})
}

func (s *ProcessoServico) transicionar(id uuid.UUID, tipoEvento string, transicao func(*dominio.Processo) error) (*dominio.Processo, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		processo, err := s.buscarProcessoTravado(tx, id)
		if err != nil {
			return err
		}

		if err := transicao(processo); err != nil {
			return err
		}

		if err := tx.Model(processo).Update("status_processo", processo.StatusProcesso).Error; err != nil {
			return fmt.Errorf("falha ao salvar processo: %w", err)
		}

		return s.registrarEvento(tx, tipoEvento, processo)
	})
	if err != nil {
		return nil, err
	}

	return s.BuscarPorID(id)
}

// Partes envolvidas
func (s *ProcessoServico) AdicionarParte(processoID uuid.UUID, entrada ParteEntrada) (*dominio.Processo, error) {
	return s.AdicionarPartes(processoID, []ParteEntrada{entrada})
}

func (s *ProcessoServico) AdicionarPartes(processoID uuid.UUID, entradas []ParteEntrada) (*dominio.Processo, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		processo, err := s.buscarProcesso(tx, processoID)
		if err != nil {
			return err
		}

		for _, entrada := range entradas {
			pessoa, err := s.Pessoas.BuscarPorID(entrada.PessoaID)
			if err != nil {
				return err
			}

			parte, err := dominio.NovaParteEnvolvida(*pessoa, entrada.Tipo)
			if err != nil {
				return err
			}

			processo.AdicionarParte(parte)
			nova := &processo.Partes[len(processo.Partes)-1]
			if err := tx.Omit("Pessoa").Create(nova).Error; err != nil {
				return fmt.Errorf("falha ao adicionar parte envolvida: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.BuscarPorID(processoID)
}

func (s *ProcessoServico) RemoverParte(processoID, parteID uuid.UUID) (*dominio.Processo, error) {
	processo, err := s.BuscarPorID(processoID)
	if err != nil {
		return nil, err
	}

	// remoção de id ausente não é erro
	processo.RemoverPartePorID(parteID)

	err = s.DB.
		Where("id = ? AND processo_id = ?", parteID, processoID).
		Delete(&dominio.ParteEnvolvida{}).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao remover parte envolvida: %w", err)
	}

	return processo, nil
}

// Ações
func (s *ProcessoServico) AdicionarAcao(processoID uuid.UUID, entrada AcaoEntrada) (*dominio.Processo, error) {
	return s.AdicionarAcoes(processoID, []AcaoEntrada{entrada})
}

func (s *ProcessoServico) AdicionarAcoes(processoID uuid.UUID, entradas []AcaoEntrada) (*dominio.Processo, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		processo, err := s.buscarProcesso(tx, processoID)
		if err != nil {
			return err
		}

		for _, entrada := range entradas {
			acao, err := dominio.NovaAcao(entrada.Tipo, entrada.Descricao)
			if err != nil {
				return err
			}

			processo.AdicionarAcao(acao)
			nova := &processo.Acoes[len(processo.Acoes)-1]
			if err := tx.Create(nova).Error; err != nil {
				return fmt.Errorf("falha ao adicionar ação: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.BuscarPorID(processoID)
}

func (s *ProcessoServico) RemoverAcao(processoID, acaoID uuid.UUID) (*dominio.Processo, error) {
	processo, err := s.BuscarPorID(processoID)
	if err != nil {
		return nil, err
	}

	processo.RemoverAcaoPorID(acaoID)

	err = s.DB.
		Where("id = ? AND processo_id = ?", acaoID, processoID).
		Delete(&dominio.Acao{}).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao remover ação: %w", err)
	}

	return processo, nil
}

func (s *ProcessoServico) consultaComFilhos() *gorm.DB {
	return s.DB.Model(&dominio.Processo{}).
		Preload("Partes.Pessoa").
		Preload("Acoes")
}

func (s *ProcessoServico) buscarProcesso(tx *gorm.DB, id uuid.UUID) (*dominio.Processo, error) {
	var processo dominio.Processo
	err := tx.
		Preload("Partes.Pessoa").
		Preload("Acoes").
		First(&processo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dominio.ErroProcessoNaoEncontrado("Processo não encontrado com ID: " + id.String())
		}
		return nil, fmt.Errorf("falha ao buscar processo: %w", err)
	}
	return &processo, nil
}

func (s *ProcessoServico) buscarProcessoTravado(tx *gorm.DB, id uuid.UUID) (*dominio.Processo, error) {
	var processo dominio.Processo
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&processo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dominio.ErroProcessoNaoEncontrado("Processo não encontrado com ID: " + id.String())
		}
		return nil, fmt.Errorf("falha ao buscar processo: %w", err)
	}

	// filhos carregados fora do FOR UPDATE; a linha do processo já está travada
	if err := tx.Where("processo_id = ?", id).Find(&processo.Partes).Error; err != nil {
		return nil, fmt.Errorf("falha ao buscar partes envolvidas: %w", err)
	}
	if err := tx.Where("processo_id = ?", id).Find(&processo.Acoes).Error; err != nil {
		return nil, fmt.Errorf("falha ao buscar ações: %w", err)
	}

	return &processo, nil
}

func (s *ProcessoServico) existePorNumero(numero string) (bool, error) {
	var total int64
	err := s.DB.Model(&dominio.Processo{}).
		Where("numero = ?", numero).
		Count(&total).Error
	if err != nil {
		return false, fmt.Errorf("falha ao verificar número: %w", err)
	}
	return total > 0, nil
}

func (s *ProcessoServico) registrarEvento(tx *gorm.DB, tipoEvento string, processo *dominio.Processo) error {
	evento, err := dominio.NovoEventoProcesso(tipoEvento, processo)
	if err != nil {
		return fmt.Errorf("falha ao serializar evento: %w", err)
	}
	if err := tx.Create(&evento).Error; err != nil {
		return fmt.Errorf("falha ao criar evento outbox: %w", err)
	}
	return nil
}
