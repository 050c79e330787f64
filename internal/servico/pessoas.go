package servico

import (
	"errors"
	"fmt"

	"servico-processos/internal/dominio"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PessoaServico struct {
	DB *gorm.DB
}

func (s *PessoaServico) Criar(nomeCompleto, cpfCnpj, email, telefone string) (*dominio.Pessoa, error) {
	pessoa, err := dominio.NovaPessoa(nomeCompleto, cpfCnpj, email, telefone)
	if err != nil {
		return nil, err
	}

	existe, err := s.existePorCpfCnpj(pessoa.CpfCnpj)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, dominio.ErroPessoaJaExiste("CPF/CNPJ já está cadastrado: " + cpfCnpj)
	}

	if err := s.DB.Create(pessoa).Error; err != nil {
		return nil, fmt.Errorf("falha ao criar pessoa: %w", err)
	}

	return pessoa, nil
}

func (s *PessoaServico) Atualizar(id uuid.UUID, nomeCompleto, cpfCnpj, email, telefone string) (*dominio.Pessoa, error) {
	pessoa, err := s.BuscarPorID(id)
	if err != nil {
		return nil, err
	}

	novoCpf, err := dominio.NovoCpfCnpj(cpfCnpj)
	if err != nil {
		return nil, err
	}

	// só checa unicidade quando o CPF/CNPJ muda
	if novoCpf != pessoa.CpfCnpj {
		existe, err := s.existePorCpfCnpj(novoCpf)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, dominio.ErroPessoaJaExiste("CPF/CNPJ já está cadastrado: " + cpfCnpj)
		}
	}

	if err := pessoa.Atualizar(nomeCompleto, cpfCnpj, email, telefone); err != nil {
		return nil, err
	}

	if err := s.DB.Save(pessoa).Error; err != nil {
		return nil, fmt.Errorf("falha ao atualizar pessoa: %w", err)
	}

	return pessoa, nil
}

func (s *PessoaServico) BuscarPorID(id uuid.UUID) (*dominio.Pessoa, error) {
	var pessoa dominio.Pessoa
	if err := s.DB.First(&pessoa, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dominio.ErroPessoaNaoEncontrada("Pessoa não encontrada com ID: " + id.String())
		}
		return nil, fmt.Errorf("falha ao buscar pessoa: %w", err)
	}
	return &pessoa, nil
}

func (s *PessoaServico) BuscarPorCpfCnpj(cpfCnpj string) (*dominio.Pessoa, error) {
	cpf, err := dominio.NovoCpfCnpj(cpfCnpj)
	if err != nil {
		return nil, err
	}

	var pessoa dominio.Pessoa
	if err := s.DB.First(&pessoa, "cpf_cnpj = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dominio.ErroPessoaNaoEncontrada("Pessoa não encontrada com CPF/CNPJ: " + cpfCnpj)
		}
		return nil, fmt.Errorf("falha ao buscar pessoa: %w", err)
	}
	return &pessoa, nil
}

func (s *PessoaServico) ListarPaginadas(pagina, tamanho int, ordenarPor, direcao string) (*Pagina[dominio.Pessoa], error) {
	consulta := ordenar(s.DB.Model(&dominio.Pessoa{}), ordenarPor, direcao)
	return paginar[dominio.Pessoa](consulta, pagina, tamanho)
}

func (s *PessoaServico) BuscarPorNome(nome string, pagina, tamanho int) (*Pagina[dominio.Pessoa], error) {
	consulta := s.DB.Model(&dominio.Pessoa{}).
		Where("nome_completo ILIKE ?", "%"+nome+"%")
	return paginar[dominio.Pessoa](consulta, pagina, tamanho)
}

func (s *PessoaServico) existePorCpfCnpj(cpfCnpj dominio.CpfCnpj) (bool, error) {
	var total int64
	err := s.DB.Model(&dominio.Pessoa{}).
		Where("cpf_cnpj = ?", cpfCnpj).
		Count(&total).Error
	if err != nil {
		return false, fmt.Errorf("falha ao verificar CPF/CNPJ: %w", err)
	}
	return total > 0, nil
}
