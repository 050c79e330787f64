package dominio

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipoAcao string

const (
	TipoAcaoPeticao     TipoAcao = "PETICAO"
	TipoAcaoAudiencia   TipoAcao = "AUDIENCIA"
	TipoAcaoSentenca    TipoAcao = "SENTENCA"
	TipoAcaoDesistencia TipoAcao = "DESISTENCIA"
)

// Acao é um evento processual registrado contra um Processo.
type Acao struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProcessoID   uuid.UUID `gorm:"type:uuid;not null" json:"processoId"`
	Tipo         TipoAcao  `gorm:"not null" json:"tipo"`
	Descricao    string    `json:"descricao"`
	DataRegistro time.Time `gorm:"type:date;not null" json:"dataRegistro"`
}

func NovaAcao(tipo TipoAcao, descricao string) (Acao, error) {
	switch tipo {
	case TipoAcaoPeticao, TipoAcaoAudiencia, TipoAcaoSentenca, TipoAcaoDesistencia:
	default:
		return Acao{}, novoErroCampoInvalido("Tipo de ação inválido: deve ser PETICAO, AUDIENCIA, SENTENCA ou DESISTENCIA.")
	}

	return Acao{
		Tipo:         tipo,
		Descricao:    descricao,
		DataRegistro: time.Now(),
	}, nil
}

func (a *Acao) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.DataRegistro.IsZero() {
		a.DataRegistro = time.Now()
	}
	return nil
}

func (Acao) TableName() string {
	return "acoes"
}
