package dominio

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatusProcesso string

const (
	StatusProcessoAtivo     StatusProcesso = "ATIVO"
	StatusProcessoSuspenso  StatusProcesso = "SUSPENSO"
	StatusProcessoArquivado StatusProcesso = "ARQUIVADO"
)

// Processo é a raiz do agregado: é dono das partes envolvidas e das ações.
// O status persistido é a única fonte de verdade do ciclo de vida; as
// transições são resolvidas por estadoDe a cada chamada (ver estado.go).
type Processo struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	Numero         string           `gorm:"unique;not null" json:"numero"`
	Descricao      string           `gorm:"not null" json:"descricao"`
	DataAbertura   time.Time        `gorm:"type:date;not null" json:"dataAbertura"`
	StatusProcesso StatusProcesso   `gorm:"not null" json:"statusProcesso"`
	Partes         []ParteEnvolvida `gorm:"foreignKey:ProcessoID;constraint:OnDelete:CASCADE" json:"partesEnvolvidas"`
	Acoes          []Acao           `gorm:"foreignKey:ProcessoID;constraint:OnDelete:CASCADE" json:"acoes"`
}

// NovoProcesso cria um processo ATIVO. Data de abertura zerada vira a data atual.
func NovoProcesso(numero, descricao string, dataAbertura time.Time) *Processo {
	if dataAbertura.IsZero() {
		dataAbertura = time.Now()
	}
	return &Processo{
		Numero:         numero,
		Descricao:      descricao,
		DataAbertura:   dataAbertura,
		StatusProcesso: StatusProcessoAtivo,
		Partes:         []ParteEnvolvida{},
		Acoes:          []Acao{},
	}
}

// Ativar, Suspender e Arquivar são as únicas operações que mudam o status.
func (p *Processo) Ativar() error {
	return estadoDe(p.StatusProcesso).ativar(p)
}

func (p *Processo) Suspender() error {
	return estadoDe(p.StatusProcesso).suspender(p)
}

func (p *Processo) Arquivar() error {
	return estadoDe(p.StatusProcesso).arquivar(p)
}

// PodeArquivar exige pelo menos um AUTOR, um REU e um ADVOGADO entre as partes,
// e entre as ações uma PETICAO, uma AUDIENCIA e um desfecho (SENTENCA ou
// DESISTENCIA). Reavaliado a cada tentativa de arquivamento.
func (p *Processo) PodeArquivar() bool {
	return p.temPartesObrigatorias() && p.temAcoesObrigatorias()
}

func (p *Processo) temPartesObrigatorias() bool {
	var temAutor, temReu, temAdvogado bool
	for _, parte := range p.Partes {
		switch parte.Tipo {
		case TipoParteAutor:
			temAutor = true
		case TipoParteReu:
			temReu = true
		case TipoParteAdvogado:
			temAdvogado = true
		}
	}
	return temAutor && temReu && temAdvogado
}

func (p *Processo) temAcoesObrigatorias() bool {
	var temPeticao, temAudiencia, temDesfecho bool
	for _, acao := range p.Acoes {
		switch acao.Tipo {
		case TipoAcaoPeticao:
			temPeticao = true
		case TipoAcaoAudiencia:
			temAudiencia = true
		case TipoAcaoSentenca, TipoAcaoDesistencia:
			temDesfecho = true
		}
	}
	return temPeticao && temAudiencia && temDesfecho
}

// Atualizar troca cada campo apenas quando o novo valor foi informado.
// Status nunca muda por aqui: use Ativar, Suspender ou Arquivar.
func (p *Processo) Atualizar(numero, descricao string, dataAbertura *time.Time) {
	if strings.TrimSpace(numero) != "" {
		p.Numero = numero
	}
	if strings.TrimSpace(descricao) != "" {
		p.Descricao = descricao
	}
	if dataAbertura != nil && !dataAbertura.IsZero() {
		p.DataAbertura = *dataAbertura
	}
}

func (p *Processo) AdicionarParte(parte ParteEnvolvida) {
	parte.ProcessoID = p.ID
	p.Partes = append(p.Partes, parte)
}

func (p *Processo) RemoverParte(parte ParteEnvolvida) {
	p.RemoverPartePorID(parte.ID)
}

// RemoverPartePorID remove a parte com o id informado; ausência não é erro.
func (p *Processo) RemoverPartePorID(parteID uuid.UUID) {
	for i, parte := range p.Partes {
		if parte.ID == parteID {
			p.Partes = append(p.Partes[:i], p.Partes[i+1:]...)
			return
		}
	}
}

func (p *Processo) AdicionarAcao(acao Acao) {
	acao.ProcessoID = p.ID
	p.Acoes = append(p.Acoes, acao)
}

func (p *Processo) RemoverAcao(acao Acao) {
	p.RemoverAcaoPorID(acao.ID)
}

func (p *Processo) RemoverAcaoPorID(acaoID uuid.UUID) {
	for i, acao := range p.Acoes {
		if acao.ID == acaoID {
			p.Acoes = append(p.Acoes[:i], p.Acoes[i+1:]...)
			return
		}
	}
}

func (p *Processo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.DataAbertura.IsZero() {
		p.DataAbertura = time.Now()
	}
	if p.StatusProcesso == "" {
		p.StatusProcesso = StatusProcessoAtivo
	}
	return nil
}

func (Processo) TableName() string {
	return "processos"
}
