package dominio

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pessoa struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	NomeCompleto string    `gorm:"not null" json:"nomeCompleto"`
	CpfCnpj      CpfCnpj   `gorm:"column:cpf_cnpj;unique;not null" json:"cpfCnpj"`
	Email        Email     `gorm:"not null" json:"email"`
	Telefone     Telefone  `gorm:"not null" json:"telefone"`
}

// NovaPessoa valida os três value objects antes de montar a entidade.
// Qualquer campo rejeitado impede a construção (nenhuma pessoa parcial).
func NovaPessoa(nomeCompleto, cpfCnpj, email, telefone string) (*Pessoa, error) {
	cpf, err := NovoCpfCnpj(cpfCnpj)
	if err != nil {
		return nil, err
	}

	mail, err := NovoEmail(email)
	if err != nil {
		return nil, err
	}

	tel, err := NovoTelefone(telefone)
	if err != nil {
		return nil, err
	}

	return &Pessoa{
		NomeCompleto: nomeCompleto,
		CpfCnpj:      cpf,
		Email:        mail,
		Telefone:     tel,
	}, nil
}

// Atualizar substitui os quatro campos incondicionalmente (diferente do
// Processo, que atualiza campo a campo).
func (p *Pessoa) Atualizar(nomeCompleto, cpfCnpj, email, telefone string) error {
	cpf, err := NovoCpfCnpj(cpfCnpj)
	if err != nil {
		return err
	}

	mail, err := NovoEmail(email)
	if err != nil {
		return err
	}

	tel, err := NovoTelefone(telefone)
	if err != nil {
		return err
	}

	p.NomeCompleto = nomeCompleto
	p.CpfCnpj = cpf
	p.Email = mail
	p.Telefone = tel
	return nil
}

func (p *Pessoa) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Pessoa) TableName() string {
	return "pessoas"
}
