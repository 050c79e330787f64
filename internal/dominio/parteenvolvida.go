package dominio

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TipoParteEnvolvida string

const (
	TipoParteAutor    TipoParteEnvolvida = "AUTOR"
	TipoParteReu      TipoParteEnvolvida = "REU"
	TipoParteAdvogado TipoParteEnvolvida = "ADVOGADO"
)

// ParteEnvolvida vincula uma Pessoa a um Processo com um papel. Pertence ao
// Processo: guarda o id do pai, não uma referência viva.
type ParteEnvolvida struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ProcessoID uuid.UUID          `gorm:"type:uuid;not null" json:"processoId"`
	PessoaID   uuid.UUID          `gorm:"type:uuid;not null" json:"pessoaId"`
	Pessoa     Pessoa             `gorm:"foreignKey:PessoaID" json:"pessoa"`
	Tipo       TipoParteEnvolvida `gorm:"not null" json:"tipo"`
}

func NovaParteEnvolvida(pessoa Pessoa, tipo TipoParteEnvolvida) (ParteEnvolvida, error) {
	switch tipo {
	case TipoParteAutor, TipoParteReu, TipoParteAdvogado:
	default:
		return ParteEnvolvida{}, novoErroCampoInvalido("Tipo de parte envolvida inválido: deve ser AUTOR, REU ou ADVOGADO.")
	}

	return ParteEnvolvida{
		PessoaID: pessoa.ID,
		Pessoa:   pessoa,
		Tipo:     tipo,
	}, nil
}

func (p *ParteEnvolvida) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (ParteEnvolvida) TableName() string {
	return "partes_envolvidas"
}
